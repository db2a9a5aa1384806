/*
Package madlib implements fill-in-the-blank templates for node text.

A template references up to four named slots ({noun}, {verb}, {adjective}, {adverb}).
Words are collected by the session driver and substituted at display time, so the
same template renders identically no matter how many times it is displayed.
*/
package madlib
