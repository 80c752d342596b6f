// Package category maintains the registry of expense categories.
package category

import (
	"errors"
	"strings"

	"minhafinanca/internal/model"
)

// ErrDuplicate indicates a category with the same name already exists.
// Names are compared case-insensitively after trimming whitespace.
var ErrDuplicate = errors.New("category: name already exists")

// palette is cycled when assigning colors to user-created categories,
// indexed by registry size at creation time.
var palette = []string{
	"#10b981", "#3b82f6", "#f59e0b", "#ef4444", "#8b5cf6",
	"#ec4899", "#06b6d4", "#6366f1", "#14b8a6", "#f97316",
}

// customIconKey marks user-created categories; built-ins use their own name.
const customIconKey = "Custom"

// Builtin returns the seed categories present on first run.
func Builtin() []model.Category {
	return []model.Category{
		{Name: "Moradia", IconKey: "Moradia", Color: "#3b82f6", Description: "Aluguel, luz, água"},
		{Name: "Alimentação", IconKey: "Alimentação", Color: "#f59e0b", Description: "Mercado e delivery"},
		{Name: "Transporte", IconKey: "Transporte", Color: "#ef4444", Description: "Combustível, Uber"},
		{Name: "Contas Fixas", IconKey: "Contas Fixas", Color: "#10b981", Description: "Internet, celular"},
		{Name: "Lazer", IconKey: "Lazer", Color: "#8b5cf6", Description: "Cinema, saídas"},
		{Name: "Saúde", IconKey: "Saúde", Color: "#ec4899", Description: "Farmácia, consultas"},
		{Name: "Educação", IconKey: "Educação", Color: "#6366f1", Description: "Cursos e livros"},
		{Name: "Assinaturas", IconKey: "Assinaturas", Color: "#14b8a6", Description: "Netflix, Spotify"},
		{Name: "Investimento", IconKey: "Investimento", Color: "#059669", Description: "Reserva e ações"},
		{Name: "Outros", IconKey: "Outros", Color: "#94a3b8", Description: "Gastos diversos"},
	}
}

// Registry holds the ordered category list and tracks which category new
// expenses are attributed to. Categories are append-only.
type Registry struct {
	cats   []model.Category
	active int
}

// New creates a registry from a restored category list.
// An empty list seeds the built-in set. The active category defaults to the
// second entry when present, else the first.
func New(cats []model.Category) *Registry {
	if len(cats) == 0 {
		cats = Builtin()
	}
	r := &Registry{cats: cats}
	if len(cats) > 1 {
		r.active = 1
	}
	return r
}

// All returns a copy of the registered categories in order.
func (r *Registry) All() []model.Category {
	out := make([]model.Category, len(r.cats))
	copy(out, r.cats)
	return out
}

// Len returns the number of registered categories.
func (r *Registry) Len() int {
	return len(r.cats)
}

// Add registers a new user-defined category. A trimmed-empty name is a
// silent no-op (nil, nil). A name matching an existing entry
// case-insensitively fails with ErrDuplicate and leaves the registry
// unchanged. On success the new category becomes the active one.
func (r *Registry) Add(name string) (*model.Category, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, nil
	}

	lower := strings.ToLower(name)
	for _, c := range r.cats {
		if strings.ToLower(c.Name) == lower {
			return nil, ErrDuplicate
		}
	}

	cat := model.Category{
		Name:        name,
		IconKey:     customIconKey,
		Color:       palette[len(r.cats)%len(palette)],
		Description: "Conta Personalizada",
	}
	r.cats = append(r.cats, cat)
	r.active = len(r.cats) - 1
	return &cat, nil
}

// Lookup finds a category by name, case-insensitively.
func (r *Registry) Lookup(name string) (model.Category, bool) {
	lower := strings.ToLower(strings.TrimSpace(name))
	for _, c := range r.cats {
		if strings.ToLower(c.Name) == lower {
			return c, true
		}
	}
	return model.Category{}, false
}

// SetActive marks the named category as the target for new expenses.
// Unknown names leave the active category unchanged.
func (r *Registry) SetActive(name string) bool {
	lower := strings.ToLower(strings.TrimSpace(name))
	for i, c := range r.cats {
		if strings.ToLower(c.Name) == lower {
			r.active = i
			return true
		}
	}
	return false
}

// Active returns the category new expenses are attributed to.
func (r *Registry) Active() model.Category {
	if len(r.cats) == 0 {
		return model.Category{}
	}
	return r.cats[r.active]
}
