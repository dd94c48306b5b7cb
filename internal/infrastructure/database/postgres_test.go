package database

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSupabaseConnString(t *testing.T) {
	want := "host=db.abcd.supabase.co port=6543 user=postgres password=pw dbname=postgres sslmode=require"
	assert.Equal(t, want, SupabaseConnString("https://abcd.supabase.co", "pw"))
	assert.Equal(t, want, SupabaseConnString("https://abcd.supabase.co/", "pw"))
}
