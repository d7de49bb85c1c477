package bank

import (
	"context"
	"fmt"
	"slices"

	"github.com/Rana718/fakebank/internal/synth"
)

// NoSubproduct marks a contract whose product has no subproducts.
const NoSubproduct = "SB00"

const (
	companyCount        = 5
	branchesPerCompany  = 7
	productCount        = 25
	subproductProducts  = 10
	subproductCount     = 5
	contractNumberSpace = 10_000_000
)

var (
	contractCounts = synth.MustCategorical(
		[]int{3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15},
		[]float64{0.25, 0.20, 0.15, 0.10, 0.08, 0.06, 0.05, 0.04, 0.03, 0.02, 0.01, 0.01, 0.01},
	)
	holderRoles = synth.MustCategorical(
		[]HolderRole{RoleHolder, RoleCoHolder, RoleAuthorized, RoleRepresentative, RoleAttorney, RoleGuardian, RoleCourtAdministrator, RoleAdministrator, RoleHeir},
		[]float64{0.6, 0.15, 0.1, 0.05, 0.03, 0.02, 0.02, 0.02, 0.01},
	)
	contractStatuses = synth.MustCategorical(
		[]ContractStatus{StatusActive, StatusCancelled, StatusExpired, StatusRescinded},
		[]float64{0.7, 0.15, 0.1, 0.05},
	)
)

// Catalog holds the company, branch and product codes of one run.
type Catalog struct {
	Companies   []string
	Branches    map[string][]string
	Products    []string
	Subproducts []string

	// withSubproduct is drawn once per run.
	withSubproduct map[string]bool
}

// NewCatalog builds the fixed code tables and draws which products carry
// subproducts.
func NewCatalog(src *synth.Source) *Catalog {
	c := &Catalog{
		Branches:       make(map[string][]string, companyCount),
		withSubproduct: make(map[string]bool, subproductProducts),
	}
	for i := 1; i <= companyCount; i++ {
		company := fmt.Sprintf("EMP%02d", i)
		c.Companies = append(c.Companies, company)
		for j := 1; j <= branchesPerCompany; j++ {
			c.Branches[company] = append(c.Branches[company], fmt.Sprintf("CEN%02d", j))
		}
	}
	for i := 1; i <= productCount; i++ {
		c.Products = append(c.Products, fmt.Sprintf("PRD%02d", i))
	}
	for i := 1; i <= subproductCount; i++ {
		c.Subproducts = append(c.Subproducts, fmt.Sprintf("SB%02d", i))
	}
	for _, i := range src.Sample(len(c.Products), subproductProducts) {
		c.withSubproduct[c.Products[i]] = true
	}
	return c
}

// HasSubproduct reports whether contracts on product carry a subproduct code.
func (c *Catalog) HasSubproduct(product string) bool {
	return c.withSubproduct[product]
}

// SubproductProducts lists the products with subproducts in catalog order.
func (c *Catalog) SubproductProducts() []string {
	var out []string
	for _, p := range c.Products {
		if c.withSubproduct[p] {
			out = append(out, p)
		}
	}
	return out
}

// HasBranch reports whether branch belongs to company.
func (c *Catalog) HasBranch(company, branch string) bool {
	return slices.Contains(c.Branches[company], branch)
}

// GenerateContracts draws between 3 and 15 contracts per customer.
func GenerateContracts(ctx context.Context, env *Env, catalog *Catalog, customers []Customer) ([]Contract, error) {
	var out []Contract
	openFloor := synth.YearsBefore(env.today, 10)

	for _, cust := range customers {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		n := contractCounts.Draw(env.src)
		for k := 0; k < n; k++ {
			company := synth.Pick(env.src, catalog.Companies)
			ct := Contract{
				CustomerID:     cust.ID,
				CompanyCode:    company,
				BranchCode:     synth.Pick(env.src, catalog.Branches[company]),
				ProductCode:    synth.Pick(env.src, catalog.Products),
				SubproductCode: NoSubproduct,
			}
			if catalog.HasSubproduct(ct.ProductCode) {
				ct.SubproductCode = synth.Pick(env.src, catalog.Subproducts)
			}
			ct.ContractNumber = fmt.Sprintf("%07d", env.src.IntN(contractNumberSpace))
			ct.HolderRole = holderRoles.Draw(env.src)

			var err error
			ct.OpenDate, err = synth.DateBetween(env.src, openFloor, env.today)
			if err != nil {
				return nil, fmt.Errorf("contracts: open date: %w", err)
			}
			ct.Status = contractStatuses.Draw(env.src)
			if ct.Status == StatusActive {
				ct.CloseDate = synth.SentinelDate
			} else {
				ct.CloseDate, err = synth.DateBetween(env.src, ct.OpenDate, env.today)
				if err != nil {
					return nil, fmt.Errorf("contracts: close date: %w", err)
				}
			}
			out = append(out, ct)
		}
	}
	synth.ShuffleSlice(env.src, out)
	return out, nil
}
