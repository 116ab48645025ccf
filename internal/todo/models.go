package todo

// DefaultListName is the reserved name of the default list. Items of the
// default list live in the flat items collection, never in a List document.
const DefaultListName = "Today"

// Item is a single checkable entry. Items are created and deleted, never
// updated in place.
type Item struct {
	ID   string `json:"id" bson:"_id"`
	Name string `json:"name" bson:"name"`
}

// List is a named custom list. Its items are embedded copies that carry their
// own id but are not reachable through the default item collection.
type List struct {
	ID    string `json:"id,omitempty" bson:"_id,omitempty"`
	Name  string `json:"name" bson:"name"`
	Items []Item `json:"items" bson:"items"`
}

// Clone returns a deep copy so callers never share the items backing array.
func (l List) Clone() List {
	out := l
	out.Items = append([]Item(nil), l.Items...)
	if out.Items == nil {
		out.Items = []Item{}
	}
	return out
}
