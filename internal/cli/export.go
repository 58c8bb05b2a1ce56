package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"
)

// writeDataset serializes a chart dataset to path, or to stdout when path
// is "-" or empty. format is "json" or "msgpack".
func writeDataset(path, format string, data any) error {
	var encoded []byte
	var err error

	switch format {
	case "", "json":
		encoded, err = json.MarshalIndent(data, "", "  ")
	case "msgpack":
		encoded, err = marshalMsgpack(data)
	default:
		return fmt.Errorf("unknown output format %q (json or msgpack)", format)
	}
	if err != nil {
		return fmt.Errorf("encoding dataset: %w", err)
	}

	if path == "" || path == "-" {
		_, err = os.Stdout.Write(encoded)
		return err
	}
	if err := os.WriteFile(path, encoded, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func marshalMsgpack(data any) ([]byte, error) {
	var buf bytes.Buffer
	enc := msgpack.NewEncoder(&buf)
	enc.SetCustomStructTag("json")
	if err := enc.Encode(data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
