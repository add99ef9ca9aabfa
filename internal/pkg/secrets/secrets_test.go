//go:build unit

package secrets

import (
	"context"
	"errors"
	"testing"

	"agw-agent/internal/mock"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const wellFormedOutput = `Hardware ID
--------------
1234-abcd-5678-efgh

Challenge key
-----------
a-challenge-key
`

func TestParse(t *testing.T) {
	t.Run("WellFormedOutput", func(t *testing.T) {
		result, err := Parse(wellFormedOutput)
		require.NoError(t, err)
		assert.Equal(t, "1234-abcd-5678-efgh", result.HardwareID)
		assert.Equal(t, "a-challenge-key", result.ChallengeKey)
	})

	t.Run("MissingHardwareIDLabel", func(t *testing.T) {
		output := `Challenge key
-----------
a-challenge-key
`
		_, err := Parse(output)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("MissingChallengeKeyValue", func(t *testing.T) {
		output := `Hardware ID
--------------
1234-abcd-5678-efgh

Challenge key
-----------
`
		_, err := Parse(output)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("EmptyOutput", func(t *testing.T) {
		_, err := Parse("")
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestFetch(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	runner := mock.NewMockCommandRunner(ctrl)

	t.Run("Success", func(t *testing.T) {
		runner.EXPECT().
			Run(gomock.Any(), "show_gateway_info.py").
			Return(0, []byte(wellFormedOutput), nil)

		result, err := Fetch(context.Background(), runner)
		require.NoError(t, err)
		assert.Equal(t, "1234-abcd-5678-efgh", result.HardwareID)
		assert.Equal(t, "a-challenge-key", result.ChallengeKey)
	})

	t.Run("CommandFails", func(t *testing.T) {
		runner.EXPECT().
			Run(gomock.Any(), "show_gateway_info.py").
			Return(-1, nil, errors.New("executable file not found"))

		_, err := Fetch(context.Background(), runner)
		assert.Error(t, err)
	})

	t.Run("NonZeroExit", func(t *testing.T) {
		runner.EXPECT().
			Run(gomock.Any(), "show_gateway_info.py").
			Return(2, []byte("traceback"), nil)

		_, err := Fetch(context.Background(), runner)
		assert.Error(t, err)
	})
}
