package doctor_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/hbjs97/n/internal/doctor"
	"github.com/hbjs97/n/internal/pm"
	"github.com/hbjs97/n/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckManager_Present(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("pnpm --version", "9.12.0\n", nil)

	result := doctor.CheckManager(context.Background(), fake, pm.PNPM)
	assert.Equal(t, doctor.StatusOK, result.Status)
	assert.Equal(t, "9.12.0", result.Message)
	assert.Empty(t, result.Fix)
}

func TestCheckManager_Missing(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("bun --version", "", fmt.Errorf("executable file not found in $PATH"))

	result := doctor.CheckManager(context.Background(), fake, pm.Bun)
	assert.Equal(t, doctor.StatusFail, result.Status)
	assert.Contains(t, result.Message, "bun")
	assert.Contains(t, result.Fix, "bun.sh")
}

func TestCheckManager_MultilineVersion(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("yarn --version", "  1.22.22\nwarning: something\n", nil)

	result := doctor.CheckManager(context.Background(), fake, pm.Yarn)
	assert.Equal(t, "1.22.22", result.Message)
}

func TestCheckManagers_PreservesOrder(t *testing.T) {
	fake := testutil.NewFakeCommander()
	fake.Register("pnpm --version", "9.0.0", nil)
	fake.Register("bun --version", "", fmt.Errorf("not found"))
	fake.Register("npm --version", "10.0.0", nil)
	fake.Register("yarn --version", "", fmt.Errorf("not found"))

	results := doctor.CheckManagers(context.Background(), fake, pm.Candidates())
	require.Len(t, results, 4)

	var got []pm.Manager
	for _, r := range results {
		got = append(got, r.Manager)
	}
	assert.Equal(t, pm.Candidates(), got)
	assert.Equal(t, doctor.StatusOK, results[0].Status)
	assert.Equal(t, doctor.StatusFail, results[1].Status)
	assert.Equal(t, doctor.StatusOK, results[2].Status)
	assert.Equal(t, doctor.StatusFail, results[3].Status)
	assert.Equal(t, 4, fake.CallCount(""))
}
