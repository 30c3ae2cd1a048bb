package sheet

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"
	"sync"
	"time"

	"debt_reminder/internal/config"
	"debt_reminder/internal/model"

	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/sheets/v4"
)

// SheetService дописывает журнал уведомлений в Google таблицу
type SheetService struct {
	SpreadsheetID string
	SheetName     string
	PauseMs       int // пауза между запросами в миллисекундах
	srv           *sheets.Service
	limiterMu     sync.Mutex
	lastCall      time.Time
	colMap        ColumnMap
}

type ColumnMap map[string]int // например: "N": 0, "Client": 1, ...

// Порядок колонок по умолчанию
func NewDefaultColumnMap() ColumnMap {
	return ColumnMap{
		"N":      0,
		"Client": 1,
		"Phone":  2,
		"Amount": 3,
		"Method": 4,
		"SentAt": 5,
	}
}

// Создает ColumnMap из строки порядка (например: "N,Client,Phone,Amount,Method,SentAt")
func CreateColumnMapFromOrder(order string) ColumnMap {
	if order == "" {
		return NewDefaultColumnMap()
	}
	fields := strings.Split(order, ",")
	m := make(ColumnMap)
	for idx, field := range fields {
		m[strings.TrimSpace(field)] = idx
	}
	return m
}

// Конструктор SheetService
func NewSheetService(ctx context.Context, cfg config.GoogleSheetConfig, colMap ColumnMap) (*SheetService, error) {
	credBytes, err := base64.StdEncoding.DecodeString(cfg.CredentialsBase64)
	if err != nil {
		return nil, fmt.Errorf("не удается декодировать credentials из base64: %w", err)
	}
	creds, err := google.CredentialsFromJSON(ctx, credBytes, sheets.SpreadsheetsScope)
	if err != nil {
		return nil, fmt.Errorf("не удается создать credentials из JSON: %w", err)
	}
	return newSheetService(ctx, cfg, colMap, option.WithCredentials(creds))
}

func newSheetService(ctx context.Context, cfg config.GoogleSheetConfig, colMap ColumnMap, opts ...option.ClientOption) (*SheetService, error) {
	srv, err := sheets.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("не удается инициализировать сервис Google Sheets: %w", err)
	}
	if colMap == nil {
		colMap = NewDefaultColumnMap()
	}
	return &SheetService{
		SpreadsheetID: cfg.SheetID,
		SheetName:     cfg.SheetName,
		PauseMs:       cfg.PauseMs,
		srv:           srv,
		colMap:        colMap,
	}, nil
}

// Лимитер: вызывает паузу между запросами
func (s *SheetService) Wait() {
	s.limiterMu.Lock()
	defer s.limiterMu.Unlock()
	elapsed := time.Since(s.lastCall)
	pause := time.Duration(s.PauseMs) * time.Millisecond
	if elapsed < pause {
		time.Sleep(pause - elapsed)
	}
	s.lastCall = time.Now()
}

func (s *SheetService) row(entry model.NotificationLog, client model.Client) []interface{} {
	values := make([]interface{}, len(s.colMap))
	for field, idx := range s.colMap {
		if idx < 0 || idx >= len(values) {
			continue
		}
		switch field {
		case "N":
			values[idx] = entry.ID
		case "Client":
			values[idx] = client.Name
		case "Phone":
			values[idx] = client.Phone
		case "Amount":
			values[idx] = client.RemainingBalance.StringFixed(2)
		case "Method":
			values[idx] = entry.Method
		case "SentAt":
			values[idx] = entry.SentAt.Format(time.DateTime)
		default:
			values[idx] = ""
		}
	}
	return values
}

// AppendNotification добавляет строку журнала в конец листа
func (s *SheetService) AppendNotification(ctx context.Context, entry model.NotificationLog, client model.Client) error {
	s.Wait() // лимитер

	vr := &sheets.ValueRange{
		Values: [][]interface{}{s.row(entry, client)},
	}
	rangeStr := fmt.Sprintf("%s!A1", s.SheetName)
	_, err := s.srv.Spreadsheets.Values.Append(s.SpreadsheetID, rangeStr, vr).
		ValueInputOption("RAW").
		InsertDataOption("INSERT_ROWS").
		Context(ctx).
		Do()
	if err != nil {
		return fmt.Errorf("ошибка добавления в таблицу: %w", err)
	}
	return nil
}
