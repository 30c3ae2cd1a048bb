package domain

import "errors"

// ErrNotFound запись не найдена или принадлежит другому администратору
var ErrNotFound = errors.New("record not found")
