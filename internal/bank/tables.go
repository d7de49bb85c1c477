package bank

import (
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Rana718/fakebank/internal/synth"
)

const (
	TableCustomers   = "customers"
	TableExCustomers = "ex_customers"
	TableContracts   = "contracts"
	TableContacts    = "contacts"
	TableAddresses   = "addresses"
	TableTransfers   = "transfers"
	TableFraudHolds  = "fraud_holds"
)

// TableNames lists every output table in generation order.
var TableNames = []string{
	TableCustomers, TableExCustomers, TableContracts, TableContacts,
	TableAddresses, TableTransfers, TableFraudHolds,
}

type ColumnKind int

const (
	KindText ColumnKind = iota
	KindInt
	KindDate
	KindTimestamp
	KindDecimal
)

func (k ColumnKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindDate:
		return "date"
	case KindTimestamp:
		return "timestamp"
	case KindDecimal:
		return "decimal"
	default:
		return "text"
	}
}

// Column describes one output column. References names the parent table of
// a foreign key column.
type Column struct {
	Name       string
	Kind       ColumnKind
	Nullable   bool
	PrimaryKey bool
	References string
}

// Table is a row-major view of one generated table. Cells hold string,
// int, time.Time, decimal.Decimal or nil.
type Table struct {
	Name    string
	Columns []Column
	Rows    [][]any
}

// DependsOn returns the distinct parent tables of t.
func (t Table) DependsOn() []string {
	var out []string
	seen := map[string]bool{}
	for _, c := range t.Columns {
		if c.References != "" && !seen[c.References] {
			seen[c.References] = true
			out = append(out, c.References)
		}
	}
	return out
}

// ColumnNames returns the header row.
func (t Table) ColumnNames() []string {
	out := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		out[i] = c.Name
	}
	return out
}

// Format renders a cell the way every text output writes it. nil becomes
// the empty string.
func (c Column) Format(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case int:
		return strconv.Itoa(x)
	case decimal.Decimal:
		return x.StringFixed(2)
	case time.Time:
		if c.Kind == KindTimestamp {
			return x.UTC().Format(synth.TimestampLayout)
		}
		return x.UTC().Format(synth.DateLayout)
	default:
		return ""
	}
}

var personColumns = []Column{
	{Name: "id", PrimaryKey: true},
	{Name: "doc_type"},
	{Name: "doc_code"},
	{Name: "given_name"},
	{Name: "surname1"},
	{Name: "surname2", Nullable: true},
	{Name: "nationality"},
	{Name: "birth_date", Kind: KindDate},
	{Name: "enrollment_date", Kind: KindDate},
	{Name: "gender"},
	{Name: "marital_status"},
	{Name: "education_level"},
	{Name: "language_code"},
}

// Schema returns the columns of every table, keyed by table name.
func Schema() map[string][]Column {
	return map[string][]Column{
		TableCustomers: personColumns,
		TableExCustomers: append(append([]Column(nil), personColumns...),
			Column{Name: "exit_reason"},
			Column{Name: "exclusion_date", Kind: KindDate},
			Column{Name: "reactivation_date", Kind: KindDate, Nullable: true},
		),
		TableContracts: {
			{Name: "customer_id", References: TableCustomers},
			{Name: "company_code"},
			{Name: "branch_code"},
			{Name: "product_code"},
			{Name: "subproduct_code"},
			{Name: "contract_number"},
			{Name: "holder_role"},
			{Name: "open_date", Kind: KindDate},
			{Name: "close_date", Kind: KindDate},
			{Name: "status"},
		},
		TableContacts: {
			{Name: "customer_id", References: TableCustomers},
			{Name: "contact_type"},
			{Name: "value"},
			{Name: "open_date", Kind: KindDate},
			{Name: "close_date", Kind: KindDate},
		},
		TableAddresses: {
			{Name: "customer_id", References: TableCustomers},
			{Name: "sequence_number", Kind: KindInt},
			{Name: "street"},
			{Name: "city"},
			{Name: "region"},
			{Name: "postal_code"},
			{Name: "country"},
		},
		TableTransfers: {
			{Name: "sender_id", References: TableCustomers},
			{Name: "receiver_id", References: TableCustomers},
			{Name: "amount", Kind: KindDecimal},
			{Name: "timestamp", Kind: KindTimestamp},
			{Name: "reason"},
		},
		TableFraudHolds: {
			{Name: "customer_id", References: TableCustomers},
			{Name: "fraud_type"},
			{Name: "status"},
			{Name: "inclusion_timestamp", Kind: KindTimestamp},
			{Name: "block_timestamp", Kind: KindTimestamp, Nullable: true},
			{Name: "note"},
		},
	}
}

// Tables returns the dataset as tables in generation order.
func (d *Dataset) Tables() []Table {
	schema := Schema()
	out := make([]Table, 0, len(TableNames))
	for _, name := range TableNames {
		out = append(out, Table{Name: name, Columns: schema[name], Rows: d.rows(name)})
	}
	return out
}

func (d *Dataset) rows(table string) [][]any {
	var rows [][]any
	switch table {
	case TableCustomers:
		for _, c := range d.Customers {
			rows = append(rows, personRow(c))
		}
	case TableExCustomers:
		for _, c := range d.ExCustomers {
			rows = append(rows, append(personRow(c.Customer),
				string(c.ExitReason), c.ExclusionDate, optionalTime(c.ReactivationDate)))
		}
	case TableContracts:
		for _, c := range d.Contracts {
			rows = append(rows, []any{
				c.CustomerID, c.CompanyCode, c.BranchCode, c.ProductCode, c.SubproductCode,
				c.ContractNumber, string(c.HolderRole), c.OpenDate, c.CloseDate, string(c.Status),
			})
		}
	case TableContacts:
		for _, c := range d.Contacts {
			rows = append(rows, []any{c.CustomerID, string(c.ContactType), c.Value, c.OpenDate, c.CloseDate})
		}
	case TableAddresses:
		for _, a := range d.Addresses {
			rows = append(rows, []any{a.CustomerID, a.SequenceNumber, a.Street, a.City, a.Region, a.PostalCode, a.Country})
		}
	case TableTransfers:
		for _, t := range d.Transfers {
			rows = append(rows, []any{t.SenderID, t.ReceiverID, t.Amount, t.Timestamp, string(t.Reason)})
		}
	case TableFraudHolds:
		for _, h := range d.FraudHolds {
			rows = append(rows, []any{
				h.CustomerID, string(h.FraudType), string(h.Status),
				h.InclusionTimestamp, optionalTime(h.BlockTimestamp), h.Note,
			})
		}
	}
	return rows
}

func personRow(c Customer) []any {
	var surname2 any
	if c.Surname2 != nil {
		surname2 = *c.Surname2
	}
	return []any{
		c.ID, string(c.DocType), c.DocCode, c.GivenName, c.Surname1, surname2,
		c.Nationality, c.BirthDate, c.EnrollmentDate, string(c.Gender),
		string(c.MaritalStatus), c.EducationLevel, c.LanguageCode,
	}
}

func optionalTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return *t
}

// RowCounts returns the number of rows per table.
func (d *Dataset) RowCounts() map[string]int {
	return map[string]int{
		TableCustomers:   len(d.Customers),
		TableExCustomers: len(d.ExCustomers),
		TableContracts:   len(d.Contracts),
		TableContacts:    len(d.Contacts),
		TableAddresses:   len(d.Addresses),
		TableTransfers:   len(d.Transfers),
		TableFraudHolds:  len(d.FraudHolds),
	}
}
