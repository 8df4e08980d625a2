package queue

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	id := uuid.New()
	body := []byte(`{"id":"` + id.String() + `","to":"ann@example.com","subject":"Birthday reminder","body":"Bob's birthday is today."}`)

	msg, err := Decode(body)
	require.NoError(t, err)
	assert.Equal(t, id, msg.ID)
	assert.Equal(t, "ann@example.com", msg.To)
	assert.Equal(t, "Birthday reminder", msg.Subject)
}

func TestDecode_Invalid(t *testing.T) {
	_, err := Decode([]byte(`{not json`))
	assert.Error(t, err)

	_, err = Decode([]byte(`{"subject":"x"}`))
	assert.ErrorContains(t, err, "no recipient")
}

func TestEncode(t *testing.T) {
	body, err := Encode(EmailMessage{ID: uuid.Nil, To: "ann@example.com", Body: "hi"})
	require.NoError(t, err)
	assert.Contains(t, string(body), `"to":"ann@example.com"`)
}

func TestEncode_KeepsAttempt(t *testing.T) {
	body, err := Encode(EmailMessage{To: "ann@example.com", Attempt: 2})
	require.NoError(t, err)

	msg, err := Decode(body)
	require.NoError(t, err)
	assert.Equal(t, 2, msg.Attempt)
}

func TestExhausted(t *testing.T) {
	assert.False(t, Exhausted(EmailMessage{Attempt: 0}))
	assert.False(t, Exhausted(EmailMessage{Attempt: MaxDeliveries - 2}))
	assert.True(t, Exhausted(EmailMessage{Attempt: MaxDeliveries - 1}))
}
