package service

import (
	"context"
	"fmt"
	"time"

	"pricebook-be/internal/dto"
	"pricebook-be/internal/pkg/apperr"
	"pricebook-be/internal/repository/specification"
	"pricebook-be/internal/repository/unitofwork"
	"pricebook-be/pkg/catalog"
	"pricebook-be/pkg/export"
)

// Literal text of the printed form this report replaces, passed through
// unchanged.
const (
	exportTitle       = "НАЦИОНАЛНА АГЕНЦИЯ ЗА ПРИХОДИТЕ"
	exportSubtitle1   = "ЦЕНТРАЛНО УПРАВЛЕНИЕ"
	exportSubtitle2   = "ГЛАВНА ДИРЕКЦИЯ “ФИСКАЛЕН КОНТРОЛ“"
	exportAddressLine = "1000 София. бул. “Княз Дондуков“ №52 Телефон: 0700 18 700 Факс: (02) 9859 3099"
	exportAppendix    = "Приложение №1 към Протокол №…………………………….."
	exportCompany     = "Задължено лице: Анет4 ЕООД"
	exportCompanyEIK  = "ЕИК: 202112929"
	exportCompanySite = "Търговски обект: ? от Анет4 гр. Бургас ул. ? А93"
	exportFooter      = "ЦУ на НАП 2025г"
)

var exportTableHeaders = []string{"№", "Марка", "Продажна цена с ДДС", "Доставна цена без ДДС"}

type IExportService interface {
	GenerateWord(ctx context.Context) (*dto.WordExport, error)
}

type exportService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *catalog.Manager
	renderer   export.Renderer
	now        func() time.Time
}

func NewExportService(
	uowFactory unitofwork.RepositoryFactory,
	cache *catalog.Manager,
	renderer export.Renderer,
) IExportService {
	return &exportService{
		uowFactory: uowFactory,
		cache:      cache,
		renderer:   renderer,
		now:        time.Now,
	}
}

// GenerateWord assembles the grouped price report and renders it. The whole
// export reads one snapshot: a refresh finishing mid-export is not observed.
func (s *exportService) GenerateWord(ctx context.Context) (*dto.WordExport, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	groups, err := uow.GroupRepository().FindAll(ctx, specification.OrderBy{Field: "name"})
	if err != nil {
		return nil, err
	}
	if len(groups) == 0 {
		return nil, fmt.Errorf("export: %w", apperr.ErrNoGroups)
	}

	snap := s.cache.Snapshot(ctx)
	now := s.now()

	doc := &export.Document{
		Title:       exportTitle,
		Subtitles:   []string{exportSubtitle1, exportSubtitle2},
		AddressLine: exportAddressLine,
		BodyLines: []string{
			exportAppendix,
			exportCompany,
			exportCompanyEIK,
			exportCompanySite,
			fmt.Sprintf("Данни за цените на продуктите към дата: %s", now.Format("02.01.2006")),
		},
		Footer: exportFooter,
	}

	for gi, group := range groups {
		items, err := uow.GroupItemRepository().FindAll(ctx,
			specification.ByGroupID{GroupID: group.Id},
			specification.OrderBy{Field: "created_at"},
		)
		if err != nil {
			return nil, err
		}

		var rows []export.Row
		for _, item := range items {
			rec, ok := snap.Lookup(item.ItemId)
			if !ok {
				// Memberships may point at ids the source no longer has.
				continue
			}
			rows = append(rows, export.Row{
				Name:        rec.Field("Item"),
				ClientPrice: export.FormatPrice(rec.Field("ClientPrice")),
				VendorPrice: export.FormatPrice(rec.Field("VendorPrice")),
			})
		}

		// A group with zero resolvable members is omitted entirely. It
		// still keeps its number: the numbering follows the position in
		// the full name-ordered list, omissions leave a gap.
		if len(rows) == 0 {
			continue
		}

		groupIndex := gi + 1
		for i := range rows {
			rows[i].Number = fmt.Sprintf("%d.%d", groupIndex, i+1)
		}

		doc.Tables = append(doc.Tables, export.Table{
			Heading: fmt.Sprintf("%d. %s", groupIndex, group.Name),
			Headers: exportTableHeaders,
			Rows:    rows,
		})
	}

	content, err := s.renderer.Render(doc)
	if err != nil {
		return nil, fmt.Errorf("failed to render export: %w", err)
	}

	return &dto.WordExport{
		FileName: fmt.Sprintf("export_%s.docx", now.Format("20060102_150405")),
		Content:  content,
	}, nil
}
