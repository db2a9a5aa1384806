/*
Package domain contains the core models of the decision tree walker.

It defines the immutable tree (nodes, boolean-labeled edges and a root) and the
traversal state that a session advances one answer at a time. This package is kept
pure and free of I/O, following the same hexagonal split as the rest of the module.

# Key Entities

  - Node: a question or statement, addressed by a small integer handle.
  - Edge: a directed yes/no branch between two nodes.
  - Tree: the arena of nodes plus an adjacency table with at most one target per label.
  - State: the runtime snapshot of one walk (current node, path, collected words).
*/
package domain
