/*
Package menutree builds chatbot menu trees and exports them as a deterministic JSON document.

A menu is a forest of buttons. Each button carries display text, a reply, an optional
message template, a list of labels offered to the user, and an optional carousel of
media cards. Sub-buttons are created from the parent's labels, so the tree always mirrors
what the user is offered.

# Architecture

  - pkg/tree: the node store. It owns identity and the parent/child structure.
  - pkg/editor: the editing operations. Every mutation goes through it.
  - pkg/export: the depth-first export producing the wire document.
  - pkg/session: concurrent editing sessions, one tree each.
  - pkg/adapters: HTTP, MCP and the export sinks (memory, file, Redis).

# Usage

	m := menutree.New()
	ed := m.Editor()

	start, _ := ed.AddRootButton()
	_ = ed.SetButtonText(start.ID, "Start")
	_ = ed.SetLabels(start.ID, "Yes, No")
	_, _ = ed.AddSubButtonFromLabel(start.ID, "Yes")

	if err := m.Write(os.Stdout); err != nil {
		log.Fatal(err)
	}

Outlines written in YAML can be loaded with Load, which replays them through the editor.
*/
package menutree
