package todo

import "sort"

// Group names. The "by date" groups are further keyed by a due-date label.
const (
	GroupAll        = "todos"
	GroupDone       = "done"
	GroupByDate     = "todos_by_date"
	GroupDoneByDate = "done_todos_by_date"
)

// IsDateGroup reports whether name refers to a group keyed by due-date label.
func IsDateGroup(name string) bool {
	return name == GroupByDate || name == GroupDoneByDate
}

// ValidGroup reports whether name is one of the four known group names.
func ValidGroup(name string) bool {
	switch name {
	case GroupAll, GroupDone, GroupByDate, GroupDoneByDate:
		return true
	}
	return false
}

// DateGroup is the set of todos sharing a due-date label.
type DateGroup struct {
	Label string
	Todos []Todo
}

// Groups is the derived view of a todo collection. It is always rebuilt from
// the collection and never mutated on its own.
type Groups struct {
	All        []Todo
	Done       []Todo
	ByDate     []DateGroup
	DoneByDate []DateGroup
}

// BuildGroups partitions todos by completion state and due date. Date groups
// are ordered chronologically by (year, month) with NoDueDate last; todos keep
// their collection order inside every group.
func BuildGroups(todos []Todo) Groups {
	g := Groups{
		All:  make([]Todo, 0, len(todos)),
		Done: make([]Todo, 0),
	}
	for _, t := range todos {
		g.All = append(g.All, t)
		if t.Completed {
			g.Done = append(g.Done, t)
		}
	}
	g.ByDate = groupByDate(g.All)
	g.DoneByDate = groupByDate(g.Done)
	return g
}

// List returns the todos of a named group. For date groups the label picks
// the entry; an unknown group or label yields nil.
func (g Groups) List(name, label string) []Todo {
	switch name {
	case GroupAll:
		return g.All
	case GroupDone:
		return g.Done
	case GroupByDate:
		return lookup(g.ByDate, label)
	case GroupDoneByDate:
		return lookup(g.DoneByDate, label)
	}
	return nil
}

func lookup(groups []DateGroup, label string) []Todo {
	for _, dg := range groups {
		if dg.Label == label {
			return dg.Todos
		}
	}
	return nil
}

type dateBucket struct {
	key   int
	dated bool
	group DateGroup
}

func groupByDate(todos []Todo) []DateGroup {
	index := make(map[string]int)
	buckets := make([]dateBucket, 0)

	for _, t := range todos {
		label := t.DueDate()
		i, ok := index[label]
		if !ok {
			key, dated := t.dueKey()
			i = len(buckets)
			index[label] = i
			buckets = append(buckets, dateBucket{key: key, dated: dated, group: DateGroup{Label: label}})
		}
		buckets[i].group.Todos = append(buckets[i].group.Todos, t)
	}

	sort.SliceStable(buckets, func(i, j int) bool {
		a, b := buckets[i], buckets[j]
		if a.dated != b.dated {
			return a.dated
		}
		return a.key < b.key
	})

	out := make([]DateGroup, len(buckets))
	for i, b := range buckets {
		out[i] = b.group
	}
	return out
}
