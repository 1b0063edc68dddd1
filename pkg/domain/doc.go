/*
Package domain contains the core models of a menu tree.

It defines the entities edited by a session and exported as a conversational menu
document. This package is kept pure and free of I/O, following the same
Hexagonal Architecture split as the rest of menutree.

# Key Entities

  - Node: One menu button (text, reply, labels, template binding, carousel).
  - CarouselCard: A media item (image or video) attached to a carousel-enabled node.
  - MediaType: The kind of media a card points to ("IMAGE" or "VIDEO").
*/
package domain
