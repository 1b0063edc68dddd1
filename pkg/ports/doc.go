/*
Package ports defines the driven ports (interfaces) of menutree.

These interfaces decouple the editing core from the places an exported document is
delivered to, allowing hosts to pick a backend without touching the core.

# Key Interfaces

  - ExportSink: Receives published documents (e.g., Memory, File, Redis).
*/
package ports
