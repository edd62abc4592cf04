//go:build integration

package integration

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hamadhassan3/outseta-client-sub001/pkg/outseta"
	"github.com/hamadhassan3/outseta-client-sub001/pkg/outsetaclient"
)

func TestAccountsPaging(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	crm, err := outsetaclient.NewCRM(config.ClientConfig())
	require.NoError(t, err)

	req, err := outseta.NewPageRequest().WithPageSize(5).Build()
	require.NoError(t, err)

	first, err := crm.Accounts().List(ctx, req)
	require.NoError(t, err)

	all, err := outseta.FetchAllPages(ctx, crm.Accounts().List, req, &outseta.IteratorOptions{MaxPages: 20})
	require.NoError(t, err)

	if first.Metadata.Total <= 100 {
		assert.Len(t, all, first.Metadata.Total)
	}

	if len(all) == 0 {
		return
	}

	account, err := crm.Accounts().Get(ctx, all[0].UID)
	require.NoError(t, err)
	assert.Equal(t, all[0].UID, account.UID)
}

func TestMissingAccount(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	crm, err := outsetaclient.NewCRM(config.ClientConfig())
	require.NoError(t, err)

	_, err = crm.Accounts().Get(context.Background(), "missing-account-uid")
	require.Error(t, err)
	assert.Equal(t, outseta.KindFailed, outseta.KindOf(err))
}

func TestPlans(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	billing, err := outsetaclient.NewBilling(config.ClientConfig())
	require.NoError(t, err)

	plans, err := outseta.FetchAllPages(context.Background(), billing.Plans().List, nil, nil)
	require.NoError(t, err)

	for _, plan := range plans {
		assert.NotEmpty(t, plan.UID)
	}
}

func TestTokenAndProfile(t *testing.T) {
	config := LoadTestConfig()
	config.SkipIfMissingConfig(t)

	if config.Username == "" {
		t.Skip("OUTSETA_USERNAME not set, skipping token test")
	}

	ctx := context.Background()

	auth, err := outsetaclient.NewAuth(config.ClientConfig())
	require.NoError(t, err)

	token, err := auth.GetAccessToken(ctx, config.Username, config.Password)
	require.NoError(t, err)
	require.NotEmpty(t, token.AccessToken)

	profile, err := outsetaclient.NewProfile(&outsetaclient.Config{Domain: config.Domain, AccessToken: token.AccessToken})
	require.NoError(t, err)

	me, err := profile.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, config.Username, me.Email)
}
