// Command cbess hides a message in a pair of PNG images keyed by chess moves.
//
// Usage:
//
//	cbess seal -moves "1. e4 e5 2. Nf3" -message "meet at dawn"
//	cbess open -cipher cipher_board.png -key key_board.png
//	cbess embed -in cover.png -out out.png -data payload.bin
//	cbess extract -in out.png -base64
//	cbess capacity -in cover.png
//	cbess fingerprint -moves "1. e4 e5 2. Nf3"
//
// Default image paths come from CBESS_CIPHER_IMAGE and CBESS_KEY_IMAGE, and
// the log level from CBESS_LOG_LEVEL. A .env file in the working directory is
// loaded first if present.
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"

	"github.com/prajithravisankar/cbess"
	"github.com/prajithravisankar/cbess/internal/crypto"
	"github.com/sirupsen/logrus"
)

const (
	defaultCipherImage = "cipher_board.png"
	defaultKeyImage    = "key_board.png"
	defaultCarrierSize = 400
	defaultLogLevel    = "warn"
)

const usage = `usage: cbess <command> [flags]

commands:
  seal         encrypt a message and hide it in a cipher image and a key image
  open         recover a message from a cipher image and a key image
  embed        hide raw bytes in an image
  extract      read raw bytes hidden in an image
  capacity     report how much an image can hide
  fingerprint  print the key fingerprint for a move list`

var errUsage = errors.New(usage)

// Config holds the process I/O so run can be exercised in tests.
type Config struct {
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
	Getenv func(string) string
}

// DefaultConfig returns a Config wired to the real process.
func DefaultConfig() Config {
	return Config{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		Getenv: os.Getenv,
	}
}

func (c Config) env(key, fallback string) string {
	if c.Getenv != nil {
		if v := c.Getenv(key); v != "" {
			return v
		}
	}
	return fallback
}

func (c Config) logger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(c.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	level, err := logrus.ParseLevel(c.env("CBESS_LOG_LEVEL", defaultLogLevel))
	if err != nil {
		level = logrus.WarnLevel
	}
	if verbose {
		level = logrus.DebugLevel
	}
	log.SetLevel(level)
	return log
}

func run(args []string, cfg Config) error {
	if len(args) < 2 {
		return errUsage
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "seal":
		return runSeal(rest, cfg)
	case "open":
		return runOpen(rest, cfg)
	case "embed":
		return runEmbed(rest, cfg)
	case "extract":
		return runExtract(rest, cfg)
	case "capacity":
		return runCapacity(rest, cfg)
	case "fingerprint":
		return runFingerprint(rest, cfg)
	case "help", "-h", "--help":
		fmt.Fprintln(cfg.Stdout, usage)
		fmt.Fprintf(cfg.Stdout, "\ncipher suite: %s\n", crypto.Ciphersuite)
		return nil
	default:
		return fmt.Errorf("unknown command: %s\n%w", cmd, errUsage)
	}
}

func newFlagSet(name string, cfg Config) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(cfg.Stderr)
	return fs
}

func runSeal(args []string, cfg Config) error {
	fs := newFlagSet("seal", cfg)
	moves := fs.String("moves", "", "move list used as the key source")
	message := fs.String("message", "", "message to hide (read from stdin if empty)")
	cipherIn := fs.String("cipher-in", "", "cover PNG for the cipher image (blank if empty)")
	keyIn := fs.String("key-in", "", "cover PNG for the key image (blank if empty)")
	cipherOut := fs.String("cipher-out", cfg.env("CBESS_CIPHER_IMAGE", defaultCipherImage), "output cipher image")
	keyOut := fs.String("key-out", cfg.env("CBESS_KEY_IMAGE", defaultKeyImage), "output key image")
	size := fs.Int("size", defaultCarrierSize, "side length of blank carriers")
	rawMoves := fs.Bool("raw-moves", false, "use the move list verbatim, without stripping move numbers")
	halfKey := fs.Bool("half-key", false, "derive the key from the first half of the moves only")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	log := cfg.logger(*verbose)

	if *moves == "" {
		return errors.New("seal: -moves is required")
	}

	plaintext := []byte(*message)
	if *message == "" {
		data, err := io.ReadAll(cfg.Stdin)
		if err != nil {
			return fmt.Errorf("read message: %w", err)
		}
		plaintext = data
	}

	cipherCarrier, err := loadOrBlank(*cipherIn, *size)
	if err != nil {
		return err
	}
	keyCarrier, err := loadOrBlank(*keyIn, *size)
	if err != nil {
		return err
	}

	opts := pairOptions(*rawMoves, *halfKey)

	sealed, err := cbess.Seal(*moves, plaintext, cipherCarrier, keyCarrier, opts...)
	if err != nil {
		return fmt.Errorf("seal: %w", err)
	}

	log.WithFields(logrus.Fields{
		"plies":       len(cbess.SplitMoves(sealed.Moves)),
		"message":     len(plaintext),
		"fingerprint": sealed.Fingerprint,
	}).Debug("sealed message")
	log.Debugf("key source:\n%s", cbess.FormatMoves(cbess.SplitMoves(sealed.KeyMoves), 0))

	if err := cbess.SaveImage(*cipherOut, sealed.CipherImage); err != nil {
		return fmt.Errorf("save cipher image: %w", err)
	}
	if err := cbess.SaveImage(*keyOut, sealed.KeyImage); err != nil {
		return fmt.Errorf("save key image: %w", err)
	}

	fmt.Fprintf(cfg.Stdout, "fingerprint: %s\n", sealed.Fingerprint)
	fmt.Fprintf(cfg.Stdout, "cipher image: %s\n", *cipherOut)
	fmt.Fprintf(cfg.Stdout, "key image: %s\n", *keyOut)
	return nil
}

func runOpen(args []string, cfg Config) error {
	fs := newFlagSet("open", cfg)
	cipherPath := fs.String("cipher", cfg.env("CBESS_CIPHER_IMAGE", defaultCipherImage), "cipher image")
	keyPath := fs.String("key", cfg.env("CBESS_KEY_IMAGE", defaultKeyImage), "key image")
	rawMoves := fs.Bool("raw-moves", false, "with -half-key, count move numbers as moves")
	halfKey := fs.Bool("half-key", false, "derive the key from the first half of the moves only")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	log := cfg.logger(*verbose)

	cipherImg, err := cbess.LoadImage(*cipherPath)
	if err != nil {
		return fmt.Errorf("load cipher image: %w", err)
	}
	keyImg, err := cbess.LoadImage(*keyPath)
	if err != nil {
		return fmt.Errorf("load key image: %w", err)
	}

	opened, err := cbess.Open(cipherImg, keyImg, pairOptions(*rawMoves, *halfKey)...)
	if err != nil {
		if errors.Is(err, cbess.ErrInvalidPadding) {
			log.Warn("padding check failed: the key image probably does not belong to this cipher image")
		}
		return fmt.Errorf("open: %w", err)
	}

	log.WithFields(logrus.Fields{
		"moves":       opened.Moves,
		"key_moves":   opened.KeyMoves,
		"fingerprint": opened.Fingerprint,
	}).Debug("opened message")

	_, err = cfg.Stdout.Write(opened.Plaintext)
	return err
}

func runEmbed(args []string, cfg Config) error {
	fs := newFlagSet("embed", cfg)
	in := fs.String("in", "", "cover PNG (blank if empty)")
	out := fs.String("out", "", "output PNG")
	dataPath := fs.String("data", "", "file to hide (read from stdin if empty)")
	b64 := fs.Bool("base64", false, "input is standard base64")
	size := fs.Int("size", defaultCarrierSize, "side length of a blank carrier")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	log := cfg.logger(*verbose)

	if *out == "" {
		return errors.New("embed: -out is required")
	}

	var data []byte
	var err error
	if *dataPath != "" {
		data, err = os.ReadFile(*dataPath)
	} else {
		data, err = io.ReadAll(cfg.Stdin)
	}
	if err != nil {
		return fmt.Errorf("read data: %w", err)
	}
	if *b64 {
		if data, err = crypto.FromBase64(string(data)); err != nil {
			return fmt.Errorf("decode base64: %w", err)
		}
	}

	carrier, err := loadOrBlank(*in, *size)
	if err != nil {
		return err
	}

	embedded, err := cbess.Embed(carrier, data)
	if err != nil {
		return fmt.Errorf("embed: %w", err)
	}

	log.WithFields(logrus.Fields{
		"bytes":    len(data),
		"capacity": cbess.MaxPayload(carrier),
	}).Debug("embedded payload")

	return cbess.SaveImage(*out, embedded)
}

func runExtract(args []string, cfg Config) error {
	fs := newFlagSet("extract", cfg)
	in := fs.String("in", "", "PNG to read")
	b64 := fs.Bool("base64", false, "write standard base64 instead of raw bytes")
	verbose := fs.Bool("v", false, "verbose logging")
	if err := fs.Parse(args); err != nil {
		return err
	}
	log := cfg.logger(*verbose)

	if *in == "" {
		return errors.New("extract: -in is required")
	}

	img, err := cbess.LoadImage(*in)
	if err != nil {
		return err
	}

	data, err := cbess.Extract(img)
	if err != nil {
		return fmt.Errorf("extract: %w", err)
	}
	log.WithField("bytes", len(data)).Debug("extracted payload")

	if *b64 {
		_, err = fmt.Fprintln(cfg.Stdout, crypto.ToBase64(data))
		return err
	}
	_, err = cfg.Stdout.Write(data)
	return err
}

func runCapacity(args []string, cfg Config) error {
	fs := newFlagSet("capacity", cfg)
	in := fs.String("in", "", "PNG to measure")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *in == "" {
		return errors.New("capacity: -in is required")
	}

	img, err := cbess.LoadImage(*in)
	if err != nil {
		return err
	}

	b := img.Bounds()
	fmt.Fprintf(cfg.Stdout, "dimensions: %dx%d\n", b.Dx(), b.Dy())
	fmt.Fprintf(cfg.Stdout, "bits: %d\n", cbess.Capacity(img))
	if n := cbess.MaxPayload(img); n >= 0 {
		fmt.Fprintf(cfg.Stdout, "payload: %d bytes\n", n)
	} else {
		fmt.Fprintln(cfg.Stdout, "payload: too small for the length prefix")
	}
	if n := cbess.PairCapacity(img); n >= 0 {
		fmt.Fprintf(cfg.Stdout, "message: %d bytes\n", n)
	} else {
		fmt.Fprintln(cfg.Stdout, "message: too small for any message")
	}
	return nil
}

func runFingerprint(args []string, cfg Config) error {
	fs := newFlagSet("fingerprint", cfg)
	moves := fs.String("moves", "", "move list used as the key source")
	rawMoves := fs.Bool("raw-moves", false, "use the move list verbatim")
	halfKey := fs.Bool("half-key", false, "derive the key from the first half of the moves only")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *moves == "" {
		return errors.New("fingerprint: -moves is required")
	}

	source := cbess.KeyMoves(*moves, pairOptions(*rawMoves, *halfKey)...)
	_, err := fmt.Fprintln(cfg.Stdout, cbess.DeriveKey(source).Fingerprint())
	return err
}

func pairOptions(rawMoves, halfKey bool) []cbess.Option {
	var opts []cbess.Option
	if rawMoves {
		opts = append(opts, cbess.WithRawMoves())
	}
	if halfKey {
		opts = append(opts, cbess.WithHalfMoveKey())
	}
	return opts
}

func loadOrBlank(path string, size int) (image.Image, error) {
	if path == "" {
		if size <= 0 {
			return nil, fmt.Errorf("invalid carrier size %d", size)
		}
		return cbess.NewCarrier(size, size), nil
	}

	img, err := cbess.LoadImage(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return img, nil
}

func fatal(format string, args ...any) {
	fmt.Fprintf(os.Stderr, "error: "+format+"\n", args...)
	os.Exit(1)
}
