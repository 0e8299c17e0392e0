package coa

import (
	"errors"
	"fmt"
	"sort"
)

// ErrAccountNotFound indicates an unknown account code. Unknown codes point
// at a seeding bug, not user input, so callers are expected to fail loudly.
var ErrAccountNotFound = errors.New("coa: account not found")

// Role names a bookkeeping function that transaction templates resolve to a
// concrete account code. Each chart maps every role exactly once.
type Role string

const (
	RoleCash             Role = "CASH"
	RoleBank             Role = "BANK"
	RoleReceivables      Role = "RECEIVABLES"
	RolePayables         Role = "PAYABLES"
	RoleAdvancesPaid     Role = "ADVANCES_PAID"
	RolePayrollPayable   Role = "PAYROLL_PAYABLE"
	RoleInventory        Role = "INVENTORY"
	RoleWIP              Role = "WIP"
	RoleInputVAT         Role = "INPUT_VAT"
	RoleOutputVAT        Role = "OUTPUT_VAT"
	RoleGRIRClearing     Role = "GRIR_CLEARING"
	RoleFixedAsset       Role = "FIXED_ASSET"
	RoleAccumDepreciation Role = "ACCUM_DEPRECIATION"
	RoleRevenue          Role = "REVENUE"
	RoleCOGS             Role = "COGS"
	RoleDirectMaterials  Role = "DIRECT_MATERIALS"
	RoleSalaryExpense    Role = "SALARY_EXPENSE"
	RoleAdminExpense     Role = "ADMIN_EXPENSE"
	RoleDepreciationExpense Role = "DEPRECIATION_EXPENSE"
	RoleOtherIncome      Role = "OTHER_INCOME"
)

// Chart is the read-only chart of accounts for one bookkeeping mode.
type Chart struct {
	mode     Mode
	accounts map[string]Account
	roles    map[Role]string
	codes    []string
}

// Mode selects which of the two parallel charts a workspace runs on.
type Mode string

const (
	ModeDomestic Mode = "DOMESTIC"
	ModeERP      Mode = "ERP"
)

// Load builds a chart from seed data. Malformed seeds (duplicate codes,
// unknown enum values, unmapped roles) are startup errors.
func Load(mode Mode, seed []Account, roles map[Role]string) (*Chart, error) {
	c := &Chart{
		mode:     mode,
		accounts: make(map[string]Account, len(seed)),
		roles:    make(map[Role]string, len(roles)),
	}
	for _, acc := range seed {
		if acc.Code == "" {
			return nil, fmt.Errorf("coa: account %q has empty code", acc.Name)
		}
		if _, dup := c.accounts[acc.Code]; dup {
			return nil, fmt.Errorf("coa: duplicate account code %s", acc.Code)
		}
		if !validAccountType(acc.Type) {
			return nil, fmt.Errorf("coa: account %s has unknown type %q", acc.Code, acc.Type)
		}
		if !validSide(acc.NormalBalance) {
			return nil, fmt.Errorf("coa: account %s has unknown normal balance %q", acc.Code, acc.NormalBalance)
		}
		if !validBSCategory(acc.BSCategory) {
			return nil, fmt.Errorf("coa: account %s has unknown bs category %q", acc.Code, acc.BSCategory)
		}
		if !validISCategory(acc.ISCategory) {
			return nil, fmt.Errorf("coa: account %s has unknown is category %q", acc.Code, acc.ISCategory)
		}
		c.accounts[acc.Code] = acc
		c.codes = append(c.codes, acc.Code)
	}
	for role, code := range roles {
		if _, ok := c.accounts[code]; !ok {
			return nil, fmt.Errorf("coa: role %s mapped to unknown account %s", role, code)
		}
		c.roles[role] = code
	}
	sort.Strings(c.codes)
	return c, nil
}

// MustLoad is Load for the built-in seeds, panicking on defects.
func MustLoad(mode Mode, seed []Account, roles map[Role]string) *Chart {
	c, err := Load(mode, seed, roles)
	if err != nil {
		panic(err)
	}
	return c
}

// Mode reports which rule set this chart serves.
func (c *Chart) Mode() Mode { return c.mode }

// Lookup returns the account for a code.
func (c *Chart) Lookup(code string) (Account, error) {
	acc, ok := c.accounts[code]
	if !ok {
		return Account{}, fmt.Errorf("%w: %s", ErrAccountNotFound, code)
	}
	return acc, nil
}

// Classify returns the classification tuple for a code.
func (c *Chart) Classify(code string) (Classification, error) {
	acc, err := c.Lookup(code)
	if err != nil {
		return Classification{}, err
	}
	return Classification{
		Type:          acc.Type,
		NormalBalance: acc.NormalBalance,
		BSCategory:    acc.BSCategory,
		ISCategory:    acc.ISCategory,
		IsCashAccount: acc.IsCashAccount,
	}, nil
}

// Resolve maps a bookkeeping role to this chart's account code.
func (c *Chart) Resolve(role Role) (string, error) {
	code, ok := c.roles[role]
	if !ok {
		return "", fmt.Errorf("coa: role %s not mapped in %s chart", role, c.mode)
	}
	return code, nil
}

// MustResolve is Resolve for roles the seeds are known to map.
func (c *Chart) MustResolve(role Role) string {
	code, err := c.Resolve(role)
	if err != nil {
		panic(err)
	}
	return code
}

// Codes returns all account codes in sorted order.
func (c *Chart) Codes() []string {
	out := make([]string, len(c.codes))
	copy(out, c.codes)
	return out
}
