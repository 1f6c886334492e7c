package enums

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserType(t *testing.T) {
	tests := []struct {
		in      string
		want    UserType
		wantErr bool
	}{
		{"seeker", UserTypeSeeker, false},
		{"provider", UserTypeProvider, false},
		{"Seeker", UserType{}, true},
		{"", UserType{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUserType(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestJobType_TextRoundTrip(t *testing.T) {
	var v struct {
		Type JobType `json:"type"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"type":"part-time"}`), &v))
	assert.Equal(t, JobTypePartTime, v.Type)

	data, err := json.Marshal(v)
	require.NoError(t, err)
	assert.JSONEq(t, `{"type":"part-time"}`, string(data))

	err = json.Unmarshal([]byte(`{"type":"contract"}`), &v)
	assert.Error(t, err)
}

func TestJobType_Scan(t *testing.T) {
	var jt JobType
	require.NoError(t, jt.Scan("full-time"))
	assert.Equal(t, JobTypeFullTime, jt)

	require.NoError(t, jt.Scan([]byte("part-time")))
	assert.Equal(t, JobTypePartTime, jt)

	assert.Error(t, jt.Scan(42))
	assert.Error(t, jt.Scan("weekly"))

	val, err := JobTypeFullTime.Value()
	require.NoError(t, err)
	assert.Equal(t, "full-time", val)
}

func TestUserType_Scan(t *testing.T) {
	var ut UserType
	require.NoError(t, ut.Scan("provider"))
	assert.Equal(t, UserTypeProvider, ut)
	assert.Equal(t, "provider", ut.String())
}

func TestOutcomeAndState_String(t *testing.T) {
	assert.Equal(t, "already-applied", ApplyOutcomeAlreadyApplied.String())
	assert.Equal(t, "authenticated", SessionStateAuthenticated.String())

	data, err := json.Marshal(map[string]any{"status": ApplyOutcomeApplied, "state": SessionStateAnonymous})
	require.NoError(t, err)
	assert.JSONEq(t, `{"status":"applied","state":"anonymous"}`, string(data))
}

func TestOrdinalsFollowDefinitions(t *testing.T) {
	assert.Equal(t, int(userTypeSeeker), UserTypeSeeker.value)
	assert.Equal(t, int(userTypeProvider), UserTypeProvider.value)
	assert.Equal(t, int(jobTypeFullTime), JobTypeFullTime.value)
	assert.Equal(t, int(jobTypePartTime), JobTypePartTime.value)
	assert.Equal(t, int(sessionStateAnonymous), SessionStateAnonymous.value)
	assert.Equal(t, int(sessionStateAuthenticated), SessionStateAuthenticated.value)
	assert.Equal(t, int(applyOutcomeAlreadyApplied), ApplyOutcomeAlreadyApplied.value)

	for i, v := range UserTypeValues {
		assert.Equal(t, i, v.value, v.String())
	}
	for i, v := range JobTypeValues {
		assert.Equal(t, i, v.value, v.String())
	}
}
