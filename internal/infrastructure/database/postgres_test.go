package database

import (
	"testing"

	"hospital-appointment/config"

	"github.com/stretchr/testify/assert"
)

func TestDSN(t *testing.T) {
	dsn := DSN(config.DBConfig{
		Host:     "db",
		Port:     "5432",
		User:     "hospital",
		Password: "secret",
		Name:     "appointments",
		Timezone: "Europe/Istanbul",
	})

	assert.Equal(t, "host=db user=hospital password=secret dbname=appointments port=5432 sslmode=disable TimeZone=Europe/Istanbul", dsn)
}
