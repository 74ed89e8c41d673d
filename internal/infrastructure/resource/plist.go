package resource

import (
	"encoding/base64"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/beevik/etree"
	"github.com/jhoicas/vending-machine/internal/domain/entity"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// parsePlist interpreta una property list XML de Apple.
// dict -> map[string]any, array -> []any, real -> decimal.Decimal, integer -> int64,
// string -> string, true/false -> bool, date -> time.Time, data -> []byte.
func parsePlist(data []byte) (any, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = plistCharsetReader
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("plist: parsear XML: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("plist: documento sin raíz")
	}
	if root.Tag != "plist" {
		return nil, fmt.Errorf("plist: raíz <%s>, se esperaba <plist>", root.Tag)
	}
	children := root.ChildElements()
	if len(children) != 1 {
		return nil, fmt.Errorf("plist: <plist> debe contener un único valor, tiene %d", len(children))
	}
	return plistValue(children[0])
}

func plistValue(el *etree.Element) (any, error) {
	text := strings.TrimSpace(el.Text())
	switch el.Tag {
	case "dict":
		return plistDict(el)
	case "array":
		children := el.ChildElements()
		out := make([]any, 0, len(children))
		for _, child := range children {
			v, err := plistValue(child)
			if err != nil {
				return nil, err
			}
			out = append(out, v)
		}
		return out, nil
	case "real":
		d, err := decimal.NewFromString(text)
		if err != nil {
			return nil, fmt.Errorf("plist: <real>%s</real>: %w", text, err)
		}
		if !entity.AmountInRange(d) {
			return nil, fmt.Errorf("plist: <real>%s</real> fuera del rango de un double", text)
		}
		return d, nil
	case "integer":
		n, err := strconv.ParseInt(text, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("plist: <integer>%s</integer>: %w", text, err)
		}
		return n, nil
	case "string":
		// El texto de <string> se conserva tal cual, incluidos espacios.
		return el.Text(), nil
	case "true":
		return true, nil
	case "false":
		return false, nil
	case "date":
		ts, err := time.Parse(time.RFC3339, text)
		if err != nil {
			return nil, fmt.Errorf("plist: <date>%s</date>: %w", text, err)
		}
		return ts, nil
	case "data":
		raw, err := base64.StdEncoding.DecodeString(strings.Join(strings.Fields(text), ""))
		if err != nil {
			return nil, fmt.Errorf("plist: <data>: %w", err)
		}
		return raw, nil
	default:
		return nil, fmt.Errorf("plist: elemento desconocido <%s>", el.Tag)
	}
}

// plistDict recorre los hijos como pares <key>valor.
func plistDict(el *etree.Element) (map[string]any, error) {
	children := el.ChildElements()
	if len(children)%2 != 0 {
		return nil, fmt.Errorf("plist: <dict> con %d elementos, se esperaban pares clave/valor", len(children))
	}
	out := make(map[string]any, len(children)/2)
	for i := 0; i < len(children); i += 2 {
		keyEl, valEl := children[i], children[i+1]
		if keyEl.Tag != "key" {
			return nil, fmt.Errorf("plist: se esperaba <key>, llegó <%s>", keyEl.Tag)
		}
		v, err := plistValue(valEl)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", keyEl.Text(), err)
		}
		out[keyEl.Text()] = v
	}
	return out, nil
}

// plistCharsetReader admite property lists guardadas en Latin-1 además de UTF-8.
func plistCharsetReader(charset string, input io.Reader) (io.Reader, error) {
	switch strings.ToLower(charset) {
	case "iso-8859-1", "iso8859-1", "latin1":
		return transform.NewReader(input, charmap.ISO8859_1.NewDecoder()), nil
	case "windows-1252", "cp1252":
		return transform.NewReader(input, charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, fmt.Errorf("plist: codificación no soportada %q", charset)
	}
}
