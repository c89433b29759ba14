package factory_test

import (
	"github.com/stretchr/testify/mock"

	"github.com/arthur-debert/tmplfactory/pkg/types"
)

type mockUI struct {
	mock.Mock
}

var _ types.UI = (*mockUI)(nil)

func (m *mockUI) RequestTemplateFilePath() (string, bool, error) {
	args := m.Called()
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockUI) PresentTemplateList(names []string) {
	m.Called(names)
}

func (m *mockUI) PresentTemplateDetails(details string) {
	m.Called(details)
}

func (m *mockUI) SelectTemplate(names []string) (string, bool, error) {
	args := m.Called(names)
	return args.String(0), args.Bool(1), args.Error(2)
}

func (m *mockUI) RequestProjectName() (string, error) {
	args := m.Called()
	return args.String(0), args.Error(1)
}

func (m *mockUI) ReportSuccess(message string) { m.Called(message) }
func (m *mockUI) ReportWarning(message string) { m.Called(message) }
func (m *mockUI) ReportError(message string)   { m.Called(message) }

type mockMaterializer struct {
	mock.Mock
}

func (m *mockMaterializer) Materialize(record *types.TemplateRecord, name string) (*types.MaterializeResult, error) {
	args := m.Called(record, name)
	result, _ := args.Get(0).(*types.MaterializeResult)
	return result, args.Error(1)
}
