// Package cbess hides an encrypted message in a pair of ordinary images,
// keyed by a sequence of chess moves.
//
// The moves are hashed with SHA-256 into an AES-256 key. The message is
// encrypted with AES-256-CBC and the cipher output is hidden in the least
// significant bits of one image (the cipher image). The moves themselves are
// hidden the same way in a second image (the key image). Whoever holds both
// images can re-derive the key and read the message; no separate key exchange
// is needed.
//
// Basic usage:
//
//	sealed, err := cbess.Seal("1. e4 e5 2. Nf3 Nc6", []byte("meet at dawn"),
//	    cbess.NewCarrier(400, 400), cbess.NewCarrier(400, 400))
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	_ = cbess.SaveImage("cipher_board.png", sealed.CipherImage)
//	_ = cbess.SaveImage("key_board.png", sealed.KeyImage)
//
//	// Later, on the other side:
//	opened, err := cbess.Open(cipherImg, keyImg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(opened.Text())
//
// The lower-level pieces are exported too: [DeriveKey], [Cipher], [Embed] and
// [Extract].
//
// Carrier images must be stored losslessly. Only PNG is accepted by
// [LoadImage] and [DecodeImage]; JPEG and GIF are rejected.
//
// The cipher provides confidentiality only. There is no MAC, so opening with
// the wrong key image returns garbage or [ErrInvalidPadding] rather than a
// reliable authentication error.
package cbess
