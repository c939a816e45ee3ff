package http

import (
	"encoding/json"
	"net/http"

	catalogdomain "github.com/tanakrit-dev/pizzashop-pos/internal/catalog/domain"
	memberdomain "github.com/tanakrit-dev/pizzashop-pos/internal/member/domain"
	"github.com/tanakrit-dev/pizzashop-pos/internal/order/application"
)

// Monetary fields are rendered with two decimal places here and nowhere
// else; everything below the handlers works on exact decimals.

type lineResponse struct {
	ItemID    string `json:"item_id"`
	Name      string `json:"name"`
	UnitPrice string `json:"unit_price"`
	Quantity  int    `json:"quantity"`
	LineTotal string `json:"line_total"`
}

type snapshotResp struct {
	SessionID          string         `json:"session_id"`
	OrderID            string         `json:"order_id"`
	DineIn             bool           `json:"dine_in"`
	Empty              bool           `json:"empty"`
	Lines              []lineResponse `json:"lines"`
	Subtotal           string         `json:"subtotal"`
	WednesdayDiscount  string         `json:"wednesday_discount"`
	MemberDiscount     string         `json:"member_discount"`
	Savings            string         `json:"savings"`
	Total              string         `json:"total"`
	FreeWednesdayPizza bool           `json:"free_wednesday_pizza"`
	MemberID           string         `json:"member_id,omitempty"`
	MemberName         string         `json:"member_name,omitempty"`
	Summary            string         `json:"summary"`
}

func snapshotResponse(snap application.Snapshot) snapshotResp {
	resp := snapshotResp{
		SessionID:          snap.SessionID,
		OrderID:            snap.OrderID,
		DineIn:             snap.DineIn,
		Empty:              snap.Empty,
		Lines:              []lineResponse{},
		Subtotal:           snap.Subtotal.StringFixed(2),
		WednesdayDiscount:  snap.WednesdayDiscount.StringFixed(2),
		MemberDiscount:     snap.MemberDiscount.StringFixed(2),
		Savings:            snap.Savings.StringFixed(2),
		Total:              snap.Total.StringFixed(2),
		FreeWednesdayPizza: snap.FreeWednesdayPizza,
		MemberID:           snap.MemberID,
		MemberName:         snap.MemberName,
		Summary:            snap.Summary,
	}
	for _, line := range snap.Lines {
		resp.Lines = append(resp.Lines, lineResponse{
			ItemID:    line.ItemID,
			Name:      line.Name,
			UnitPrice: line.UnitPrice.StringFixed(2),
			Quantity:  line.Quantity,
			LineTotal: line.LineTotal.StringFixed(2),
		})
	}
	return resp
}

type menuItemResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Price       string `json:"price"`
	Category    string `json:"category"`
	Description string `json:"description"`
}

func menuItemResp(item catalogdomain.MenuItem) menuItemResponse {
	return menuItemResponse{
		ID:          item.ID,
		Name:        item.Name,
		Price:       item.Price.StringFixed(2),
		Category:    item.Category,
		Description: item.Description,
	}
}

type memberResponse struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	BirthDate  string `json:"birth_date"`
	ExpireDate string `json:"expire_date"`
	Active     bool   `json:"active"`
}

func memberResp(m *memberdomain.Member) memberResponse {
	return memberResponse{
		ID:         m.ID,
		Name:       m.Name,
		Phone:      m.Phone,
		BirthDate:  m.BirthDate.Format("2006-01-02"),
		ExpireDate: m.ExpireDate.Format("2006-01-02"),
		Active:     m.Active,
	}
}

type popularItemResponse struct {
	Item     menuItemResponse `json:"item"`
	Quantity int              `json:"quantity"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
