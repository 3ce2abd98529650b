package service_test

import (
	"context"
	"strings"
	"testing"
	"time"

	"pricebook-be/internal/dto"
	"pricebook-be/internal/pkg/apperr"
	"pricebook-be/internal/repository/unitofwork"
	"pricebook-be/internal/service"
	"pricebook-be/pkg/catalog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newExportFixture(t *testing.T, db *gorm.DB, records []catalog.Record) (service.IExportService, *fakeRenderer, service.IGroupService) {
	t.Helper()
	uowFactory := unitofwork.NewRepositoryFactory(db)
	reader := &staticReader{records: records, fields: []string{"id", "Item", "ClientPrice", "VendorPrice"}}
	cache := catalog.NewManager(reader, catalog.SourceProviderFunc(
		func(ctx context.Context) (string, error) { return "items.csv", nil },
	), nopLogger{}, catalog.WithTTL(time.Hour))

	renderer := &fakeRenderer{}
	return service.NewExportService(uowFactory, cache, renderer),
		renderer,
		service.NewGroupService(uowFactory)
}

func TestExportRequiresGroups(t *testing.T) {
	svc, _, _ := newExportFixture(t, newTestDB(t), nil)

	_, err := svc.GenerateWord(context.Background())
	assert.ErrorIs(t, err, apperr.ErrNoGroups)
}

func TestExportGroupOrderingAndNumbering(t *testing.T) {
	records := []catalog.Record{
		{Id: "10", Fields: map[string]string{"id": "10", "Item": "Vodka", "ClientPrice": "1.5", "VendorPrice": "1.2"}},
		{Id: "11", Fields: map[string]string{"id": "11", "Item": "Whisky", "ClientPrice": "22", "VendorPrice": ""}},
		{Id: "12", Fields: map[string]string{"id": "12", "Item": "Merlot", "ClientPrice": "8.9", "VendorPrice": "6.4"}},
	}
	svc, renderer, groups := newExportFixture(t, newTestDB(t), records)
	ctx := context.Background()

	// Created out of name order on purpose, the report sorts by name
	b, err := groups.Create(ctx, &dto.CreateGroupRequest{Name: "Spirits"})
	require.NoError(t, err)
	a, err := groups.Create(ctx, &dto.CreateGroupRequest{Name: "Reds"})
	require.NoError(t, err)
	c, err := groups.Create(ctx, &dto.CreateGroupRequest{Name: "Stale"})
	require.NoError(t, err)

	require.NoError(t, groups.AddItem(ctx, &dto.AddGroupItemRequest{GroupId: b.Id, ItemId: "10"}))
	require.NoError(t, groups.AddItem(ctx, &dto.AddGroupItemRequest{GroupId: b.Id, ItemId: "11"}))
	require.NoError(t, groups.AddItem(ctx, &dto.AddGroupItemRequest{GroupId: a.Id, ItemId: "12"}))
	// Points only at an id the source no longer carries
	require.NoError(t, groups.AddItem(ctx, &dto.AddGroupItemRequest{GroupId: c.Id, ItemId: "gone"}))

	res, err := svc.GenerateWord(ctx)
	require.NoError(t, err)
	assert.Equal(t, []byte("DOCX"), res.Content)
	assert.True(t, strings.HasPrefix(res.FileName, "export_"), res.FileName)
	assert.True(t, strings.HasSuffix(res.FileName, ".docx"), res.FileName)

	doc := renderer.doc
	require.NotNil(t, doc)

	// "Stale" resolved nothing and is omitted
	require.Len(t, doc.Tables, 2)
	assert.Equal(t, "1. Reds", doc.Tables[0].Heading)
	assert.Equal(t, "2. Spirits", doc.Tables[1].Heading)

	require.Len(t, doc.Tables[0].Rows, 1)
	assert.Equal(t, "1.1", doc.Tables[0].Rows[0].Number)
	assert.Equal(t, "Merlot", doc.Tables[0].Rows[0].Name)
	assert.Equal(t, "8.9000", doc.Tables[0].Rows[0].ClientPrice)

	require.Len(t, doc.Tables[1].Rows, 2)
	assert.Equal(t, "2.1", doc.Tables[1].Rows[0].Number)
	assert.Equal(t, "Vodka", doc.Tables[1].Rows[0].Name)
	assert.Equal(t, "1.5000", doc.Tables[1].Rows[0].ClientPrice)
	assert.Equal(t, "1.2000", doc.Tables[1].Rows[0].VendorPrice)
	assert.Equal(t, "2.2", doc.Tables[1].Rows[1].Number)
	assert.Equal(t, "Whisky", doc.Tables[1].Rows[1].Name)
	// Blank source prices render as zero
	assert.Equal(t, "0.0000", doc.Tables[1].Rows[1].VendorPrice)
}

func TestExportOmittedGroupKeepsItsNumber(t *testing.T) {
	records := []catalog.Record{
		{Id: "10", Fields: map[string]string{"id": "10", "Item": "Vodka", "ClientPrice": "1.5", "VendorPrice": "1.2"}},
	}
	svc, renderer, groups := newExportFixture(t, newTestDB(t), records)
	ctx := context.Background()

	// "Alpha" sorts first but resolves nothing, "Beta" keeps number 2
	alpha, err := groups.Create(ctx, &dto.CreateGroupRequest{Name: "Alpha"})
	require.NoError(t, err)
	beta, err := groups.Create(ctx, &dto.CreateGroupRequest{Name: "Beta"})
	require.NoError(t, err)

	require.NoError(t, groups.AddItem(ctx, &dto.AddGroupItemRequest{GroupId: alpha.Id, ItemId: "gone"}))
	require.NoError(t, groups.AddItem(ctx, &dto.AddGroupItemRequest{GroupId: beta.Id, ItemId: "10"}))

	_, err = svc.GenerateWord(ctx)
	require.NoError(t, err)

	doc := renderer.doc
	require.NotNil(t, doc)
	require.Len(t, doc.Tables, 1)
	assert.Equal(t, "2. Beta", doc.Tables[0].Heading)
	require.Len(t, doc.Tables[0].Rows, 1)
	assert.Equal(t, "2.1", doc.Tables[0].Rows[0].Number)
}

func TestExportDocumentHeaderText(t *testing.T) {
	records := []catalog.Record{
		{Id: "10", Fields: map[string]string{"id": "10", "Item": "Vodka", "ClientPrice": "1.5", "VendorPrice": "1.2"}},
	}
	svc, renderer, groups := newExportFixture(t, newTestDB(t), records)
	ctx := context.Background()

	g, err := groups.Create(ctx, &dto.CreateGroupRequest{Name: "Spirits"})
	require.NoError(t, err)
	require.NoError(t, groups.AddItem(ctx, &dto.AddGroupItemRequest{GroupId: g.Id, ItemId: "10"}))

	_, err = svc.GenerateWord(ctx)
	require.NoError(t, err)

	doc := renderer.doc
	require.NotNil(t, doc)
	assert.Equal(t, "НАЦИОНАЛНА АГЕНЦИЯ ЗА ПРИХОДИТЕ", doc.Title)
	assert.Len(t, doc.Subtitles, 2)
	require.NotEmpty(t, doc.BodyLines)
	assert.Contains(t, doc.BodyLines[len(doc.BodyLines)-1], "Данни за цените на продуктите към дата:")
	assert.Equal(t, []string{"№", "Марка", "Продажна цена с ДДС", "Доставна цена без ДДС"}, doc.Tables[0].Headers)
	assert.Equal(t, "ЦУ на НАП 2025г", doc.Footer)
}
