package railfile

import "fmt"

// Columns designates which whitespace-delimited fields of a line identify an
// instance and which field carries the value under comparison. Instance
// order is significant: keys are joined in the order given here.
type Columns struct {
	// Instance lists the zero-based indices of the key columns.
	Instance []int
	// Value is the zero-based index of the value column.
	Value int
}

// Validate rejects column specifications the parser cannot honor.
func (c Columns) Validate() error {
	if len(c.Instance) == 0 {
		return fmt.Errorf("at least one instance column is required")
	}
	for _, idx := range c.Instance {
		if idx < 0 {
			return fmt.Errorf("instance column index must be non-negative, got %d", idx)
		}
	}
	if c.Value < 0 {
		return fmt.Errorf("value column index must be non-negative, got %d", c.Value)
	}
	return nil
}

// maxIndex returns the highest column index the spec references. Lines with
// fewer fields than maxIndex+1 cannot yield a record.
func (c Columns) maxIndex() int {
	max := c.Value
	for _, idx := range c.Instance {
		if idx > max {
			max = idx
		}
	}
	return max
}
