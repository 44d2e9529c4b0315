// Package menustore is a Postgres-backed menu source for deployments that
// own their catalog instead of querying the hosted endpoint. It answers the
// same lookup contract as the remote client.
package menustore

import (
	"context"
	"database/sql"
	"fmt"

	"tavolo/internal/domain"
)

type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// FetchByName loads the full menu tree for the named restaurant. Zero rows
// maps to domain.ErrRestaurantNotFound like the remote source.
func (s *Store) FetchByName(ctx context.Context, name string) (*domain.Restaurant, error) {
	var restaurantID int
	var restaurantName string
	err := s.db.QueryRowContext(ctx,
		"SELECT id, name FROM restaurants WHERE name = $1", name).
		Scan(&restaurantID, &restaurantName)
	if err == sql.ErrNoRows {
		return nil, domain.ErrRestaurantNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("menu store: lookup restaurant: %w", err)
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT m.uuid, s.uuid, s.name, i.uuid, i.name, i.category, COALESCE(i.description, ''), i.price
		FROM menus m
		JOIN menu_sections s ON s.menu_id = m.id
		JOIN menu_items i ON i.section_id = s.id
		WHERE m.restaurant_id = $1
		ORDER BY m.position, s.position, i.position`, restaurantID)
	if err != nil {
		return nil, fmt.Errorf("menu store: load menu tree: %w", err)
	}
	defer rows.Close()

	restaurant := &domain.Restaurant{Name: restaurantName}
	for rows.Next() {
		var menuID, sectionID, sectionName string
		var item domain.MenuItem
		if err := rows.Scan(&menuID, &sectionID, &sectionName,
			&item.ID, &item.Name, &item.Category, &item.Description, &item.Price); err != nil {
			return nil, fmt.Errorf("menu store: scan menu row: %w", err)
		}
		appendItem(restaurant, menuID, sectionID, sectionName, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("menu store: read menu rows: %w", err)
	}

	return restaurant, nil
}

// appendItem rebuilds the nested tree from the flat join, relying on the
// query's sort order to keep menus and sections contiguous.
func appendItem(r *domain.Restaurant, menuID, sectionID, sectionName string, item domain.MenuItem) {
	if len(r.Menus) == 0 || r.Menus[len(r.Menus)-1].ID != menuID {
		r.Menus = append(r.Menus, domain.Menu{ID: menuID})
	}
	menu := &r.Menus[len(r.Menus)-1]

	if len(menu.Sections) == 0 || menu.Sections[len(menu.Sections)-1].ID != sectionID {
		menu.Sections = append(menu.Sections, domain.MenuSection{ID: sectionID, Name: sectionName})
	}
	section := &menu.Sections[len(menu.Sections)-1]
	section.Items = append(section.Items, item)
}
