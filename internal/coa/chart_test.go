package coa

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSeedChartsLoad(t *testing.T) {
	for _, chart := range []*Chart{DomesticChart(), ERPChart()} {
		cash, err := chart.Lookup(chart.MustResolve(RoleCash))
		require.NoError(t, err)
		require.True(t, cash.IsCashAccount)
		require.Equal(t, TypeAsset, cash.Type)

		rev, err := chart.Classify(chart.MustResolve(RoleRevenue))
		require.NoError(t, err)
		require.Equal(t, ISRevenue, rev.ISCategory)
		require.Equal(t, SideCredit, rev.NormalBalance)
	}
}

func TestLookupUnknownCode(t *testing.T) {
	chart := DomesticChart()
	_, err := chart.Lookup("999")
	require.ErrorIs(t, err, ErrAccountNotFound)
}

func TestLoadRejectsDuplicateCodes(t *testing.T) {
	seed := []Account{
		{Code: "100", Name: "Cash", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone},
		{Code: "100", Name: "Cash Again", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone},
	}
	_, err := Load(ModeDomestic, seed, nil)
	require.Error(t, err)
}

func TestLoadRejectsUnknownType(t *testing.T) {
	seed := []Account{
		{Code: "100", Name: "Cash", Type: "WEIRD", NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone},
	}
	_, err := Load(ModeDomestic, seed, nil)
	require.Error(t, err)
}

func TestLoadRejectsUnmappedRole(t *testing.T) {
	seed := []Account{
		{Code: "100", Name: "Cash", Type: TypeAsset, NormalBalance: SideDebit, BSCategory: BSCurrentAsset, ISCategory: ISNone},
	}
	_, err := Load(ModeDomestic, seed, map[Role]string{RoleBank: "200"})
	require.Error(t, err)
}
