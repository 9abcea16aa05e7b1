// Package psqlbuilder обертка над squirrel с плейсхолдерами PostgreSQL ($1, $2, ...).
// Все репозитории строят запросы через этот пакет, чтобы формат плейсхолдеров
// был задан в одном месте.
package psqlbuilder

import "github.com/Masterminds/squirrel"

var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

// Select возвращает SELECT-билдер с нужным форматом плейсхолдеров.
func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

// Insert возвращает INSERT-билдер.
func Insert(into string) squirrel.InsertBuilder {
	return builder.Insert(into)
}

// Update возвращает UPDATE-билдер.
func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

// Delete возвращает DELETE-билдер.
func Delete(from string) squirrel.DeleteBuilder {
	return builder.Delete(from)
}
