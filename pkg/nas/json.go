package nas

import "github.com/bytedance/sonic"

// JSON renders the decoded tree as a single-line JSON document. Raw
// octet spans appear base64-encoded, matching encoding/json semantics.
func (e *Element) JSON() (string, error) {
	return sonic.MarshalString(e)
}

// JSONIndent renders the decoded tree as an indented JSON document.
func (e *Element) JSONIndent() (string, error) {
	out, err := sonic.MarshalIndent(e, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}
