package seeder

import "fmt"

// DependencyGraph orders tables so that every referenced table is seeded
// before the tables pointing at it.
type DependencyGraph struct {
	tables map[string]*TableInfo
	names  []string
}

func NewDependencyGraph() *DependencyGraph {
	return &DependencyGraph{
		tables: make(map[string]*TableInfo),
	}
}

// AddTable registers a table. Tables are visited in the order they were
// added, so the resulting order is stable across runs.
func (g *DependencyGraph) AddTable(table *TableInfo) {
	if _, ok := g.tables[table.Name]; !ok {
		g.names = append(g.names, table.Name)
	}
	g.tables[table.Name] = table
}

type visitState uint8

const (
	unvisited visitState = iota
	visiting
	done
)

func (g *DependencyGraph) BuildInsertionOrder() ([]string, error) {
	state := make(map[string]visitState, len(g.names))
	order := make([]string, 0, len(g.names))

	var visit func(name string) error
	visit = func(name string) error {
		switch state[name] {
		case done:
			return nil
		case visiting:
			return fmt.Errorf("circular dependency detected involving table: %s", name)
		}
		table, ok := g.tables[name]
		if !ok {
			return fmt.Errorf("table %s is referenced but not part of the dataset", name)
		}

		state[name] = visiting
		for _, dep := range table.Dependencies {
			// self references are satisfied within the table's own rows
			if dep == name {
				continue
			}
			if err := visit(dep); err != nil {
				return err
			}
		}
		state[name] = done
		order = append(order, name)
		return nil
	}

	for _, name := range g.names {
		if err := visit(name); err != nil {
			return nil, err
		}
	}
	return order, nil
}
