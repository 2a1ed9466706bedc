// Package icon draws the lightning-bolt icon and writes it out at several sizes.
//
// Render is pure and deterministic. Generate is the batch driver: it renders and encodes each
// requested size on its own, so one failing size never prevents the others from being written.
package icon
