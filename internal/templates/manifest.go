package templates

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	oerrors "github.com/withbatteries/create-batteries/internal/errors"
)

// nameField is the manifest key overridden with the package name.
const nameField = "name"

// ManifestResult holds the template manifest before and after merging.
type ManifestResult struct {
	Before []byte
	After  []byte
}

// MergeManifest reads the template manifest from src, sets its name field
// and writes it to dst. Key order is kept and the output uses two-space
// indentation without a trailing newline.
func MergeManifest(src fs.FS, dst billy.Filesystem, name string) (*ManifestResult, error) {
	before, err := fs.ReadFile(src, ManifestFile)
	if err != nil {
		return nil, oerrors.NewFilesystemError("reading", ManifestFile, err)
	}

	after, err := OverrideManifestName(before, name)
	if err != nil {
		return nil, err
	}

	if err := util.WriteFile(dst, ManifestFile, after, 0o644); err != nil {
		return nil, oerrors.NewFilesystemError("writing", ManifestFile, err)
	}

	return &ManifestResult{Before: before, After: after}, nil
}

// OverrideManifestName returns data with its top-level name field set. A
// missing field is appended after the existing keys. Duplicate keys collapse
// into the first occurrence holding the last value, as JSON.parse reads them.
func OverrideManifestName(data []byte, name string) ([]byte, error) {
	if !json.Valid(data) {
		return nil, oerrors.NewManifestError("manifest is not valid JSON", ManifestFile, fmt.Errorf("invalid JSON"))
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	doc, err := decodeValue(dec)
	if err != nil {
		return nil, oerrors.NewManifestError("could not parse manifest", ManifestFile, err)
	}
	root, ok := doc.(*object)
	if !ok {
		return nil, oerrors.NewManifestError("manifest must be a JSON object", ManifestFile, fmt.Errorf("unexpected document shape"))
	}

	root.set(nameField, name)

	var buf bytes.Buffer
	if err := encodeJSON(&buf, root, 0); err != nil {
		return nil, oerrors.NewManifestError("could not serialize manifest", ManifestFile, err)
	}
	return buf.Bytes(), nil
}

// member is one key of a JSON object.
type member struct {
	key   string
	value any
}

// object is a JSON object in document order.
type object struct {
	members []member
	index   map[string]int
}

func (o *object) set(key string, value any) {
	if i, ok := o.index[key]; ok {
		o.members[i].value = value
		return
	}
	o.index[key] = len(o.members)
	o.members = append(o.members, member{key: key, value: value})
}

// decodeValue reads the next value from dec. Objects become *object, arrays
// []any, and scalars keep their decoder token (string, json.Number, bool, nil).
func decodeValue(dec *json.Decoder) (any, error) {
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}

	delim, ok := tok.(json.Delim)
	if !ok {
		return tok, nil
	}

	switch delim {
	case '{':
		obj := &object{index: map[string]int{}}
		for dec.More() {
			keyTok, err := dec.Token()
			if err != nil {
				return nil, err
			}
			key, ok := keyTok.(string)
			if !ok {
				return nil, fmt.Errorf("unexpected object key %v", keyTok)
			}
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			obj.set(key, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return obj, nil

	case '[':
		arr := []any{}
		for dec.More() {
			value, err := decodeValue(dec)
			if err != nil {
				return nil, err
			}
			arr = append(arr, value)
		}
		if _, err := dec.Token(); err != nil {
			return nil, err
		}
		return arr, nil

	default:
		return nil, fmt.Errorf("unexpected delimiter %q", delim)
	}
}

// encodeJSON writes v as indented JSON in document order.
func encodeJSON(buf *bytes.Buffer, v any, depth int) error {
	indent := strings.Repeat("  ", depth)
	inner := strings.Repeat("  ", depth+1)

	switch v := v.(type) {
	case *object:
		if len(v.members) == 0 {
			buf.WriteString("{}")
			return nil
		}
		buf.WriteString("{\n")
		for i, m := range v.members {
			buf.WriteString(inner)
			if err := writeString(buf, m.key); err != nil {
				return err
			}
			buf.WriteString(": ")
			if err := encodeJSON(buf, m.value, depth+1); err != nil {
				return err
			}
			if i < len(v.members)-1 {
				buf.WriteString(",")
			}
			buf.WriteString("\n")
		}
		buf.WriteString(indent + "}")

	case []any:
		if len(v) == 0 {
			buf.WriteString("[]")
			return nil
		}
		buf.WriteString("[\n")
		for i, item := range v {
			buf.WriteString(inner)
			if err := encodeJSON(buf, item, depth+1); err != nil {
				return err
			}
			if i < len(v)-1 {
				buf.WriteString(",")
			}
			buf.WriteString("\n")
		}
		buf.WriteString(indent + "]")

	case string:
		return writeString(buf, v)
	case json.Number:
		buf.WriteString(v.String())
	case bool:
		buf.WriteString(strconv.FormatBool(v))
	case nil:
		buf.WriteString("null")
	default:
		return fmt.Errorf("unsupported value %T", v)
	}
	return nil
}

// writeString writes s as a JSON string without HTML escaping.
func writeString(buf *bytes.Buffer, s string) error {
	var tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(s); err != nil {
		return err
	}
	buf.Write(bytes.TrimRight(tmp.Bytes(), "\n"))
	return nil
}
