package roster

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"
)

// xmlHeader is written verbatim at the top of every saved file.
const xmlHeader = "<?xml version='1.0' encoding='utf-8'?>\n"

// xmlField captures any child element of a record together with its own
// text content.
type xmlField struct {
	XMLName xml.Name
	Text    string `xml:",chardata"`
}

// xmlRecord is one child of the document root, usually <student>.
type xmlRecord struct {
	Fields []xmlField `xml:",any"`
}

// xmlDocument accepts any root element name.
type xmlDocument struct {
	XMLName xml.Name
	Records []xmlRecord `xml:",any"`
}

type studentElement struct {
	XMLName xml.Name `xml:"student"`
	Name    string   `xml:"name"`
	Group   string   `xml:"group"`
	Grade   string   `xml:"grade"`
}

type studentsElement struct {
	XMLName  xml.Name `xml:"students"`
	Students []studentElement
}

// Load replaces the roster with the students stored in the XML file at
// path, in file order. Records missing any of name, group or grade are
// skipped. On error the roster is left unchanged.
func (r *Roster) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fileError("load", path, err)
	}

	students, err := decodeStudents(data)
	if err != nil {
		return parseError("load", path, err)
	}

	r.students = students
	return nil
}

func decodeStudents(data []byte) ([]Student, error) {
	dec := xml.NewDecoder(bytes.NewReader(data))

	var doc xmlDocument
	if err := dec.Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("no root element")
		}
		return nil, err
	}
	if err := expectDocumentEnd(dec); err != nil {
		return nil, err
	}

	students := make([]Student, 0, len(doc.Records))
	for _, rec := range doc.Records {
		var name, group, grade *string
		for i := range rec.Fields {
			f := &rec.Fields[i]
			switch f.XMLName.Local {
			case "name":
				name = &f.Text
			case "group":
				group = &f.Text
			case "grade":
				grade = &f.Text
			}
		}
		if name == nil || group == nil || grade == nil {
			continue
		}
		students = append(students, Student{Name: *name, Group: *group, Grade: *grade})
	}
	return students, nil
}

// expectDocumentEnd rejects anything but whitespace, comments and
// processing instructions after the root element.
func expectDocumentEnd(dec *xml.Decoder) error {
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		switch t := tok.(type) {
		case xml.CharData:
			if len(bytes.TrimSpace(t)) != 0 {
				return errors.New("junk after document element")
			}
		case xml.Comment, xml.ProcInst:
		default:
			return errors.New("junk after document element")
		}
	}
}

// checkXMLText rejects fields that XML 1.0 cannot carry. encoding/xml
// would replace them with U+FFFD and the saved record would differ.
func checkXMLText(s Student) error {
	for _, f := range []struct{ name, value string }{
		{"name", s.Name},
		{"group", s.Group},
		{"grade", s.Grade},
	} {
		if !utf8.ValidString(f.value) {
			return fmt.Errorf("student %q: %s is not valid UTF-8", s.Name, f.name)
		}
		for _, r := range f.value {
			if !isXMLChar(r) {
				return fmt.Errorf("student %q: %s contains character %U not allowed in XML", s.Name, f.name, r)
			}
		}
	}
	return nil
}

// isXMLChar reports whether r is in the XML 1.0 Char production.
func isXMLChar(r rune) bool {
	return r == 0x09 || r == 0x0A || r == 0x0D ||
		r >= 0x20 && r <= 0xD7FF ||
		r >= 0xE000 && r <= 0xFFFD ||
		r >= 0x10000 && r <= 0x10FFFF
}

// Save writes the roster to path as an XML document, overwriting any
// existing file. Text XML cannot represent fails the save before the file
// is touched.
func (r *Roster) Save(path string) (err error) {
	doc := studentsElement{Students: make([]studentElement, 0, len(r.students))}
	for _, s := range r.students {
		if err := checkXMLText(s); err != nil {
			return fileError("save", path, err)
		}
		doc.Students = append(doc.Students, studentElement{Name: s.Name, Group: s.Group, Grade: s.Grade})
	}
	body, err := xml.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fileError("save", path, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fileError("save", path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fileError("save", path, cerr)
		}
	}()

	if _, err := io.WriteString(f, xmlHeader); err != nil {
		return fileError("save", path, err)
	}
	if _, err := f.Write(append(body, '\n')); err != nil {
		return fileError("save", path, err)
	}
	return nil
}
