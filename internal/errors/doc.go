// Package errors provides the structured error type shared by the audio and
// inventory subsystems.
//
// Every failure carries a Code so callers can tell "not found" apart from
// "invalid amount" apart from "not enough items" without string matching:
//
//	out, err := inv.RemoveItem(ctx, entities.InventoryItem{Name: "potion", Amount: 3})
//	switch {
//	case errors.IsNotFound(err):
//	    // the player never had a potion
//	case errors.IsFailedPrecondition(err):
//	    // the player has fewer than 3
//	case errors.IsInvalidArgument(err):
//	    // amount < 1
//	}
//
// Metadata can be attached for logging and transport:
//
//	err := errors.NotFoundf("sound %s not found", name).
//	    WithMeta("category", category)
//
// Wrap keeps the code of the wrapped error; WrapWithCode replaces it.
// ToGRPCError and FromGRPCError convert at the transport boundary, carrying
// metadata as a structpb.Struct status detail.
package errors
