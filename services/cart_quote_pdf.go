package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/johnfercher/maroto/pkg/color"
	"github.com/johnfercher/maroto/pkg/consts"
	"github.com/johnfercher/maroto/pkg/pdf"
	"github.com/johnfercher/maroto/pkg/props"
	"github.com/mose868/fashionhouse-sub000/cart"
)

var (
	darkGray   = color.Color{Red: 38, Green: 38, Blue: 34}
	mediumGray = color.Color{Red: 121, Green: 119, Blue: 109}
)

// GenerateCartQuotePDF renders the cart as a printable quote.
func GenerateCartQuotePDF(st cart.State, issuedAt time.Time) (*bytes.Buffer, error) {
	preview, err := BuildCheckoutPreview(st)
	if err != nil {
		return nil, err
	}

	m := pdf.NewMaroto(consts.Portrait, consts.A4)
	m.SetPageMargins(20, 20, 20)

	m.Row(15, func() {
		m.Col(12, func() {
			m.Text("CART QUOTE", props.Text{Size: 24, Style: consts.Bold, Color: darkGray})
		})
	})

	m.Row(10, func() {
		m.Col(6, func() {
			m.Text("MODEVA STORE", props.Text{Size: 16, Style: consts.Bold, Color: darkGray})
		})
		m.Col(6, func() {
			m.Text(fmt.Sprintf("Date: %s", issuedAt.Format("Jan 02, 2006")), props.Text{
				Size:  9,
				Color: mediumGray,
				Align: consts.Right,
			})
		})
	})

	m.Row(8, func() {})

	// Items table
	header := []string{"Description", "Qty", "Price", "Total"}
	widths := []uint{6, 2, 2, 2}
	m.Row(6, func() {
		for i, h := range header {
			align := consts.Right
			if i == 0 {
				align = consts.Left
			}
			m.Col(widths[i], func() {
				m.Text(h, props.Text{Size: 8, Style: consts.Bold, Color: darkGray, Align: align})
			})
		}
	})

	for _, item := range st.Items {
		m.Row(6, func() {
			m.Col(6, func() {
				m.Text(describe(item), props.Text{Size: 9, Color: darkGray})
			})
			m.Col(2, func() {
				m.Text(fmt.Sprintf("%d", item.Quantity), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(money(item.Product.Price), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(money(item.Subtotal()), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {})

	summary := []struct {
		label string
		value float64
	}{
		{"Subtotal", preview.Subtotal},
		{"Shipping", preview.ShippingCost},
		{"Tax", preview.Tax},
	}
	for _, line := range summary {
		m.Row(5, func() {
			m.Col(8, func() {})
			m.Col(2, func() {
				m.Text(line.label, props.Text{Size: 9, Color: mediumGray, Align: consts.Right})
			})
			m.Col(2, func() {
				m.Text(money(line.value), props.Text{Size: 9, Color: darkGray, Align: consts.Right})
			})
		})
	}

	m.Row(8, func() {
		m.Col(8, func() {})
		m.Col(2, func() {
			m.Text("Total", props.Text{Size: 12, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
		m.Col(2, func() {
			m.Text(money(preview.TotalAmount), props.Text{Size: 12, Style: consts.Bold, Color: darkGray, Align: consts.Right})
		})
	})

	m.Row(12, func() {})

	m.Row(5, func() {
		m.Col(12, func() {
			m.Text("Prices are those shown when each item was added and may change at checkout.", props.Text{
				Size:  8,
				Color: mediumGray,
			})
		})
	})

	buf, err := m.Output()
	if err != nil {
		return nil, fmt.Errorf("render cart quote: %w", err)
	}
	return &buf, nil
}

func describe(item cart.LineItem) string {
	var variant []string
	for _, v := range []string{item.Size, item.Color, item.Fabric} {
		if v != "" {
			variant = append(variant, v)
		}
	}
	if len(variant) == 0 {
		return item.Product.Name
	}
	return fmt.Sprintf("%s (%s)", item.Product.Name, strings.Join(variant, " / "))
}

func money(v float64) string {
	return fmt.Sprintf("$%.2f", v)
}
