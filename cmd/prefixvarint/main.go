package main

import (
	"bufio"
	"encoding/hex"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/eigerco/prefixvarint/pkg/bytebuf"
	"github.com/eigerco/prefixvarint/pkg/log"
	"github.com/eigerco/prefixvarint/pkg/serialization"
	"github.com/eigerco/prefixvarint/pkg/serialization/codec"
	"github.com/eigerco/prefixvarint/pkg/varint"
)

var errTruncatedInput = errors.New("input ends inside a value")

const (
	codecPrefix = "prefix"
	codecLEB128 = "leb128"
)

type config struct {
	mode   string
	codec  string
	signed bool
	inputs []string
}

func newSerializer(name string) *serialization.Serializer {
	if name == codecLEB128 {
		return serialization.NewSerializer(&codec.LEB128Codec{})
	}
	return serialization.NewSerializer(codec.NewPrefixCodec())
}

func parseFlags(args []string, logOut io.Writer) (config, error) {
	fs := flag.NewFlagSet("prefixvarint", flag.ContinueOnError)
	fs.SetOutput(logOut)
	mode := fs.String("mode", "encode", "encode, decode or inspect")
	codecName := fs.String("codec", codecPrefix, "prefix or leb128")
	signed := fs.Bool("signed", false, "treat values as signed (zigzag)")
	logLevel := fs.String("log-level", "info", "log level")
	logFormat := fs.String("log-format", "console", "console or json")
	if err := fs.Parse(args); err != nil {
		return config{}, err
	}

	level, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		return config{}, err
	}
	typ, err := log.ParseLoggerType(*logFormat)
	if err != nil {
		return config{}, err
	}
	log.Init(log.Options{LogLevel: level, Type: typ, Out: logOut})

	switch *mode {
	case "encode", "decode", "inspect":
	default:
		return config{}, fmt.Errorf("unknown mode %q", *mode)
	}
	switch *codecName {
	case codecPrefix, codecLEB128:
	default:
		return config{}, fmt.Errorf("unknown codec %q", *codecName)
	}
	return config{mode: *mode, codec: *codecName, signed: *signed, inputs: fs.Args()}, nil
}

// readInputs returns the positional args, or the non-empty lines of stdin
// when there are none.
func readInputs(args []string, stdin io.Reader) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	var lines []string
	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		if line := strings.TrimSpace(sc.Text()); line != "" {
			lines = append(lines, line)
		}
	}
	return lines, sc.Err()
}

func parseValue(s string, signed bool) (uint64, error) {
	if signed {
		v, err := strconv.ParseInt(s, 0, 64)
		if err != nil {
			return 0, err
		}
		return varint.ZigzagEncode(v), nil
	}
	return strconv.ParseUint(s, 0, 64)
}

func formatValue(u uint64, signed bool) string {
	if signed {
		return strconv.FormatInt(varint.ZigzagDecode(u), 10)
	}
	return strconv.FormatUint(u, 10)
}

func encode(cfg config, out io.Writer) error {
	s := newSerializer(cfg.codec)
	buf := bytebuf.NewBuffer(0)
	for _, in := range cfg.inputs {
		u, err := parseValue(in, cfg.signed)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", in, err)
		}

		var encoded []byte
		if cfg.codec == codecPrefix {
			buf.Reset()
			varint.PutUvarint(buf, u)
			encoded = buf.Bytes()
		} else if encoded, err = s.EncodeUvarint(u); err != nil {
			return err
		}
		log.CLI.Debug().Str("input", in).Str("codec", cfg.codec).Int("length", len(encoded)).Msg("encoded")
		if _, err := fmt.Fprintln(out, hex.EncodeToString(encoded)); err != nil {
			return err
		}
	}
	return nil
}

// decode treats all inputs as one hex byte stream split into chunks.
func decode(cfg config, out io.Writer) error {
	chunks := make([][]byte, 0, len(cfg.inputs))
	for _, in := range cfg.inputs {
		b, err := hex.DecodeString(strings.TrimPrefix(in, "0x"))
		if err != nil {
			return fmt.Errorf("parsing %q: %w", in, err)
		}
		chunks = append(chunks, b)
	}

	if cfg.codec != codecPrefix {
		return decodeWithSerializer(cfg, chunks, out)
	}

	c := bytebuf.NewChain(chunks...)
	for c.Remaining() > 0 {
		u, ok := varint.GetUvarint(c)
		if !ok {
			log.CLI.Debug().Msg("input ends inside a value")
			return errTruncatedInput
		}
		if err := printDecoded(cfg, u, out); err != nil {
			return err
		}
	}
	return nil
}

func decodeWithSerializer(cfg config, chunks [][]byte, out io.Writer) error {
	var data []byte
	for _, chunk := range chunks {
		data = append(data, chunk...)
	}

	values, decodeErr := newSerializer(cfg.codec).DecodeUvarints(data)
	for _, u := range values {
		if err := printDecoded(cfg, u, out); err != nil {
			return err
		}
	}
	if errors.Is(decodeErr, codec.ErrTruncated) {
		log.CLI.Debug().Msg("input ends inside a value")
		return errTruncatedInput
	}
	return decodeErr
}

func printDecoded(cfg config, u uint64, out io.Writer) error {
	value := formatValue(u, cfg.signed)
	log.CLI.Debug().Str("codec", cfg.codec).Str("value", value).Msg("decoded")
	_, err := fmt.Fprintln(out, value)
	return err
}

// inspect prints the prefix encoding of each value next to its LEB128 size.
func inspect(cfg config, out io.Writer) error {
	prefix, leb128 := newSerializer(codecPrefix), newSerializer(codecLEB128)
	for _, in := range cfg.inputs {
		u, err := parseValue(in, cfg.signed)
		if err != nil {
			return fmt.Errorf("parsing %q: %w", in, err)
		}
		b, err := prefix.EncodeUvarint(u)
		if err != nil {
			return err
		}
		l, err := leb128.EncodeUvarint(u)
		if err != nil {
			return err
		}
		value := formatValue(u, cfg.signed)
		log.CLI.Debug().Str("value", value).Int("length", len(b)).Int("leb128_length", len(l)).Msg("inspected")
		_, err = fmt.Fprintf(out, "value=%s len=%d tag=%08b hex=%s leb128_len=%d\n",
			value, len(b), b[0], hex.EncodeToString(b), len(l))
		if err != nil {
			return err
		}
	}
	return nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if cfg.inputs, err = readInputs(cfg.inputs, stdin); err != nil {
		return err
	}

	switch cfg.mode {
	case "decode":
		return decode(cfg, stdout)
	case "inspect":
		return inspect(cfg, stdout)
	default:
		return encode(cfg, stdout)
	}
}

// main encodes, decodes or inspects prefix varints.
// go run main.go -mode inspect 127 128 16384
func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		log.CLI.Error().Err(err).Msg("prefixvarint failed")
		os.Exit(1)
	}
}
