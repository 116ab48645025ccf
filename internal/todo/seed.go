package todo

// seedNames is the starter content shown in a destination the first time it
// becomes visible. Order matters.
var seedNames = [...]string{
	"Welcome to your todolist!",
	"Hit the + button to add a new item.",
	"<-- Hit this to delete an item.",
}

// SeedTemplate returns a copy of the seed item names.
func SeedTemplate() []string {
	out := make([]string, len(seedNames))
	copy(out, seedNames[:])
	return out
}

// NewSeedItems builds a fresh set of seed items without ids. Every call
// returns new values; the store assigns ids on insert, so two seedings never
// share an item identity.
func NewSeedItems() []Item {
	items := make([]Item, 0, len(seedNames))
	for _, n := range seedNames {
		items = append(items, Item{Name: n})
	}
	return items
}

// SeedResult reports what SeedDefaultIfEmpty did.
type SeedResult int

const (
	AlreadyPopulated SeedResult = iota
	Seeded
)

func (r SeedResult) String() string {
	if r == Seeded {
		return "seeded"
	}
	return "already populated"
}
