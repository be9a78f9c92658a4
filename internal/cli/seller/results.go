package seller

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/thenoetrevino/roster/internal/cli/styles"
	"github.com/thenoetrevino/roster/internal/config"
	"github.com/thenoetrevino/roster/internal/models"
)

// sellerList is the result of `seller list`
type sellerList struct {
	Department *models.Department
	Sellers    []*models.Seller
}

// MarshalJSON keeps the JSON payload a plain array of sellers
func (l sellerList) MarshalJSON() ([]byte, error) {
	if l.Sellers == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(l.Sellers)
}

// IDs implements quiet mode output, one id per line
func (l sellerList) IDs() []int {
	ids := make([]int, len(l.Sellers))
	for i, s := range l.Sellers {
		ids[i] = s.GetID()
	}
	return ids
}

func (l sellerList) Render(display config.Display) string {
	scope := ""
	if l.Department != nil {
		scope = " in " + l.Department.Name
	}
	if len(l.Sellers) == 0 {
		return "No sellers found" + scope
	}

	lines := []string{styles.TitleStyle.Render(fmt.Sprintf("Found %d sellers%s:", len(l.Sellers), scope)), ""}
	for _, s := range l.Sellers {
		lines = append(lines, styles.SellerLine(s, display))
	}
	return strings.Join(lines, "\n")
}

// sellerCard is the result of `seller show`
type sellerCard struct {
	*models.Seller
}

func (c sellerCard) Render(display config.Display) string {
	return styles.RenderSeller(c.Seller, display)
}

// saveResult is the result of `seller save`
type saveResult struct {
	Action string         `json:"action"`
	Seller *models.Seller `json:"seller"`
}

// GetID implements the GetID interface for quiet mode output
func (r *saveResult) GetID() int {
	return r.Seller.GetID()
}

func (r *saveResult) Render(display config.Display) string {
	style := styles.EditStyle
	if r.Action == actionCreated {
		style = styles.CreateStyle
	}
	header := style.Render(fmt.Sprintf("✓ Seller %d %s successfully", r.GetID(), r.Action))
	return header + "\n" + styles.RenderSeller(r.Seller, display)
}

// deleteResult is the result of `seller delete`
type deleteResult struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GetID implements the GetID interface for quiet mode output
func (r *deleteResult) GetID() int {
	return r.ID
}

func (r *deleteResult) Render(config.Display) string {
	return styles.DeleteStyle.Render(fmt.Sprintf("✓ Seller %d (%s) deleted successfully", r.ID, r.Name))
}

const (
	actionCreated = "created"
	actionUpdated = "updated"
	cancelled     = "Cancelled"
)
