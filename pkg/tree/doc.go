/*
Package tree implements the Tree Store: the owner of every node of one editing session.

A Tree is an explicit context object. It is created by the host, handed to the editor
and the exporter, and never shared through package-level state. It assigns node IDs,
keeps parent/child links and the ordering of root buttons.

The store is not safe for concurrent use. Hosts that may receive concurrent requests
for the same session serialize them (see pkg/session).
*/
package tree
