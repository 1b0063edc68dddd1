/*
Package session keeps the in-memory editing sessions of a host.

Each session owns exactly one tree and one editor. The Manager serializes every call
for a given session, so a host that receives concurrent requests (HTTP, MCP) still
applies editing operations one at a time, each to completion, as the editor expects.
Sessions are never persisted; they live until deleted or pruned.
*/
package session
