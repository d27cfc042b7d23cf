package providers

import (
	"bytes"
	"encoding/base64"

	"github.com/redexp/pedigree/interact"
)

func fail(err error) *Result {
	return &Result{Message: interact.ErrorMessage(err)}
}

func done(data any) *Result {
	return &Result{Ok: true, Data: data}
}

func encode(cb func(*bytes.Buffer) error) (string, error) {
	var buf bytes.Buffer

	err := cb(&buf)

	if err != nil {
		return "", err
	}

	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func decode(data string) (*bytes.Reader, error) {
	src, err := base64.StdEncoding.DecodeString(data)

	if err != nil {
		return nil, err
	}

	return bytes.NewReader(src), nil
}
