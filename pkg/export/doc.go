/*
Package export turns a menu tree into the nested JSON document consumed by the
conversational-menu runtime.

The walk is depth-first and pre-order. Identifiers in the output are positional and
independent of node IDs:

  - stageId starts at "0" for the wrapper, "1" for root buttons, and grows by one per level.
  - buttonId is the "depth" counter of the node. A child at index i of a node with depth d
    gets depth d+i, so siblings get increasing values and the counter is not the true
    tree depth.
  - parentButtonId of a child is that same d+i value, not the parent's buttonId.

The numbering is kept exactly as downstream consumers already read it.
*/
package export
