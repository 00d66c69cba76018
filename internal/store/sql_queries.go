// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-id-wallet/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

var profileColumns = []string{"id", "first_name", "last_name", "email", "phone", "created_at"}

func saveUserQuery(p models.UserProfile) (string, []any, error) {
	return psql.Insert("profiles").
		Columns(profileColumns...).
		Values(p.ID, p.FirstName, p.LastName, p.Email, p.Phone, p.CreatedAt).
		Suffix(`ON CONFLICT (id) DO UPDATE SET
			first_name = excluded.first_name,
			last_name  = excluded.last_name,
			email      = excluded.email,
			phone      = excluded.phone`).
		ToSql()
}

func getUserByPhoneQuery(phone string) (string, []any, error) {
	return psql.Select(profileColumns...).
		From("profiles").
		Where(sq.Eq{"phone": phone}).
		Limit(1).
		ToSql()
}

func saveDocumentQuery(id string, data []byte, now time.Time) (string, []any, error) {
	return psql.Insert("documents").
		Columns("id", "data", "created_at").
		Values(id, string(data), now).
		Suffix("ON CONFLICT (id) DO UPDATE SET data = excluded.data, created_at = excluded.created_at").
		ToSql()
}

func getDocumentQuery(id string) (string, []any, error) {
	return psql.Select("id", "data", "created_at").
		From("documents").
		Where(sq.Eq{"id": id}).
		ToSql()
}

func savePinHashQuery(phone, hash string) (string, []any, error) {
	return psql.Insert("pins").
		Columns("phone", "pin_hash").
		Values(phone, hash).
		Suffix("ON CONFLICT (phone) DO UPDATE SET pin_hash = excluded.pin_hash").
		ToSql()
}

func getPinHashQuery(phone string) (string, []any, error) {
	return psql.Select("pin_hash").
		From("pins").
		Where(sq.Eq{"phone": phone}).
		ToSql()
}

func getValueQuery(key string) (string, []any, error) {
	return psql.Select("value").From("kv").Where(sq.Eq{"key": key}).ToSql()
}

func setValueQuery(key, value string, now time.Time) (string, []any, error) {
	return psql.Insert("kv").
		Columns("key", "value", "updated_at").
		Values(key, value, now).
		Suffix("ON CONFLICT (key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func deleteValueQuery(key string) (string, []any, error) {
	return psql.Delete("kv").Where(sq.Eq{"key": key}).ToSql()
}
