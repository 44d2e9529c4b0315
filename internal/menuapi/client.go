// Package menuapi fetches restaurant menus from the hosted query endpoint.
// The endpoint accepts a single parameterized query and returns the nested
// restaurant → menu → section → item tree.
package menuapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"tavolo/internal/domain"
)

const menuQuery = `
query GetMenuItemsByLocale($nomeLocale: String!) {
  locali(where: {nome_locale: {_eq: $nomeLocale}}) {
    nome_locale
    menu {
      uuid
      menu_sezioni {
        uuid
        nome
        menu_items {
          uuid
          nome
          tipologia
          descrizione
          prezzo
        }
      }
    }
  }
}`

// Client issues exactly one request per FetchByName call. It does not cache,
// retry or debounce; overlapping-request prevention belongs to the caller.
type Client struct {
	httpClient *http.Client
	endpoint   string
	secret     string
}

func NewClient(endpoint, secret string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		endpoint:   endpoint,
		secret:     secret,
	}
}

type queryRequest struct {
	Query     string            `json:"query"`
	Variables map[string]string `json:"variables"`
}

// Typed schema for the upstream response. Anything that does not decode into
// this shape is reported as a transport failure instead of propagating
// undefined fields.
type queryResponse struct {
	Data *struct {
		Restaurants []restaurantPayload `json:"locali"`
	} `json:"data"`
	Errors []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

type restaurantPayload struct {
	Name  string        `json:"nome_locale"`
	Menus []menuPayload `json:"menu"`
}

type menuPayload struct {
	UUID     string           `json:"uuid"`
	Sections []sectionPayload `json:"menu_sezioni"`
}

type sectionPayload struct {
	UUID  string        `json:"uuid"`
	Name  string        `json:"nome"`
	Items []itemPayload `json:"menu_items"`
}

type itemPayload struct {
	UUID        string          `json:"uuid"`
	Name        string          `json:"nome"`
	Category    string          `json:"tipologia"`
	Description string          `json:"descrizione"`
	Price       decimal.Decimal `json:"prezzo"`
}

// FetchByName looks up the restaurant with the given name. Zero matches is a
// valid upstream response and maps to domain.ErrRestaurantNotFound; every
// other failure mode is a wrapped transport error.
func (c *Client) FetchByName(ctx context.Context, name string) (*domain.Restaurant, error) {
	body, err := json.Marshal(queryRequest{
		Query:     menuQuery,
		Variables: map[string]string{"nomeLocale": name},
	})
	if err != nil {
		return nil, fmt.Errorf("menu query: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("menu query: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.secret != "" {
		req.Header.Set("x-hasura-admin-secret", c.secret)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("menu query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("menu query: unexpected status %d", resp.StatusCode)
	}

	var out queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, fmt.Errorf("menu query: decode response: %w", err)
	}
	if len(out.Errors) > 0 {
		return nil, fmt.Errorf("menu query: upstream error: %s", out.Errors[0].Message)
	}
	if out.Data == nil {
		return nil, fmt.Errorf("menu query: response missing data")
	}
	if len(out.Data.Restaurants) == 0 {
		return nil, domain.ErrRestaurantNotFound
	}

	return toRestaurant(out.Data.Restaurants[0]), nil
}

func toRestaurant(payload restaurantPayload) *domain.Restaurant {
	restaurant := &domain.Restaurant{Name: payload.Name}
	for _, m := range payload.Menus {
		menu := domain.Menu{ID: m.UUID}
		for _, s := range m.Sections {
			section := domain.MenuSection{ID: s.UUID, Name: s.Name}
			for _, i := range s.Items {
				section.Items = append(section.Items, domain.MenuItem{
					ID:          i.UUID,
					Name:        i.Name,
					Description: i.Description,
					Category:    i.Category,
					Price:       i.Price,
				})
			}
			menu.Sections = append(menu.Sections, section)
		}
		restaurant.Menus = append(restaurant.Menus, menu)
	}
	return restaurant
}
