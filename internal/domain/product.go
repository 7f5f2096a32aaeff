package domain

import (
	"fmt"
	"strings"
)

// Product identifies one of the supported calculators.
type Product string

const (
	ProductSIP          Product = "sip"
	ProductMutualFund   Product = "mutual_fund"
	ProductFixedDeposit Product = "fixed_deposit"
)

// Mode is the compounding scheme a product uses.
type Mode string

const (
	// ModeSIP compounds monthly with a contribution at the start of every month.
	ModeSIP Mode = "SIP"
	// ModeLumpSum compounds a single principal annually.
	ModeLumpSum Mode = "LUMP_SUM"
)

// Products returns the supported products in display order.
func Products() []Product {
	return []Product{ProductSIP, ProductMutualFund, ProductFixedDeposit}
}

var productAliases = map[string]Product{
	"sip":           ProductSIP,
	"mf":            ProductMutualFund,
	"mutual_fund":   ProductMutualFund,
	"mutual-fund":   ProductMutualFund,
	"mutualfund":    ProductMutualFund,
	"fd":            ProductFixedDeposit,
	"fixed_deposit": ProductFixedDeposit,
	"fixed-deposit": ProductFixedDeposit,
	"fixeddeposit":  ProductFixedDeposit,
}

// ParseProduct resolves a product name or alias (case-insensitive).
func ParseProduct(name string) (Product, error) {
	if p, ok := productAliases[strings.ToLower(strings.TrimSpace(name))]; ok {
		return p, nil
	}
	return "", InvalidInput("product", fmt.Sprintf("unknown product %q (expected sip, mutual_fund or fixed_deposit)", name))
}

// Valid reports whether p is a supported product.
func (p Product) Valid() bool {
	switch p {
	case ProductSIP, ProductMutualFund, ProductFixedDeposit:
		return true
	}
	return false
}

// Mode returns the compounding scheme for the product.
func (p Product) Mode() Mode {
	if p == ProductSIP {
		return ModeSIP
	}
	return ModeLumpSum
}

// Labels holds the user-facing captions of a calculator form.
type Labels struct {
	Title  string `json:"title"`
	Amount string `json:"amount"`
	Rate   string `json:"rate"`
	Period string `json:"period"`
}

// Labels returns the captions shown for the product.
func (p Product) Labels() Labels {
	switch p {
	case ProductSIP:
		return Labels{Title: "SIP", Amount: "Monthly Investment", Rate: "Expected Annual Return Rate (%)", Period: "Investment Period (Years)"}
	case ProductMutualFund:
		return Labels{Title: "Mutual Fund", Amount: "Initial Investment", Rate: "Expected Annual Return Rate (%)", Period: "Investment Period (Years)"}
	case ProductFixedDeposit:
		return Labels{Title: "Fixed Deposit", Amount: "Principal Amount", Rate: "Interest Rate (%)", Period: "Time Period (Years)"}
	}
	return Labels{Title: string(p)}
}

// String returns the product title.
func (p Product) String() string { return p.Labels().Title }
