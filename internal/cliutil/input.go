package cliutil

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadInput reads the whole input from path, or from stdin when path is
// empty or "-". With isHex the input is decoded from hex text; whitespace
// and an optional 0x prefix are ignored.
func ReadInput(stdin io.Reader, path string, isHex bool) ([]byte, error) {
	var (
		data []byte
		err  error
	)
	if path == "" || path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	if !isHex {
		return data, nil
	}
	return DecodeHex(string(data))
}

// DecodeHex decodes hex text such as "0x31 32 33" or "313233".
func DecodeHex(s string) ([]byte, error) {
	s = strings.Join(strings.Fields(s), "")
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("failed to decode hex input: %w", err)
	}
	return b, nil
}
