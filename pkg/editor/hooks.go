package editor

import "time"

// Operation names the mutation that was applied.
type Operation string

const (
	OpAddRoot       Operation = "add_root"
	OpAddSubButton  Operation = "add_sub_button"
	OpSetButtonText Operation = "set_button_text"
	OpSetReplyText  Operation = "set_reply_text"
	OpSetTemplateID Operation = "set_template_id"
	OpSetLabels     Operation = "set_labels"
	OpSetParams     Operation = "set_template_params"
	OpSetCarousel   Operation = "set_carousel"
	OpAddCard       Operation = "add_card"
	OpSetCardURL    Operation = "set_card_url"
	OpSetCardType   Operation = "set_card_type"
	OpSetCardParams Operation = "set_card_params"
)

// MutationEvent describes one applied mutation.
type MutationEvent struct {
	Timestamp time.Time `json:"timestamp"`
	Op        Operation `json:"op"`
	NodeID    string    `json:"node_id"`

	// NodeCount is the size of the tree after the mutation.
	NodeCount int `json:"node_count"`
}

// Hooks defines callbacks for editor observability.
// Hooks only fire after a mutation has been fully applied.
type Hooks struct {
	OnMutation func(*MutationEvent)
	OnRejected func(op Operation, nodeID string, err error)
}
