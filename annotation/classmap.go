package annotation

import (
	"bufio"
	"github.com/pkg/errors"
	"os"
	"strings"
)

// ErrUnknownClass is returned when a class id has no label in the ClassMap
var ErrUnknownClass = errors.New("unknown class")

// ClassMap translates between class ids and label names.  Class ids are the
// position of the label in the map.
type ClassMap struct {
	names []string
	ids   map[string]int
}

// NewClassMap returns a ClassMap holding names in order
func NewClassMap(names ...string) *ClassMap {

	c := &ClassMap{ids: make(map[string]int, len(names))}

	for _, name := range names {
		c.Add(name)
	}

	return c
}

// LoadClassMap reads the labels from the given text file.  It should contain
// one label per line, blank lines are skipped.
func LoadClassMap(file string) (*ClassMap, error) {

	// open the file
	f, err := os.Open(file)

	if err != nil {
		return nil, errors.Wrap(err, "error opening class map")
	}

	defer f.Close()

	// create a scanner to read the file.
	scanner := bufio.NewScanner(f)

	var labels []string

	// read and trim each line
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			continue
		}

		labels = append(labels, line)
	}

	// check for errors during scanning
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "error reading class map")
	}

	return NewClassMap(labels...), nil
}

// Add returns the id of name, appending it to the map when not present
func (c *ClassMap) Add(name string) int {

	if id, ok := c.ids[name]; ok {
		return id
	}

	c.names = append(c.names, name)
	c.ids[name] = len(c.names) - 1

	return len(c.names) - 1
}

// Name returns the label of class id
func (c *ClassMap) Name(id int) (string, error) {

	if id < 0 || id >= len(c.names) {
		return "", errors.Wrapf(ErrUnknownClass, "class id %d", id)
	}

	return c.names[id], nil
}

// ID returns the class id of the label name
func (c *ClassMap) ID(name string) (int, bool) {
	id, ok := c.ids[name]
	return id, ok
}

// Names returns a copy of all labels ordered by class id
func (c *ClassMap) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// Len returns the number of classes
func (c *ClassMap) Len() int {
	return len(c.names)
}
