package messages

import (
	"fmt"
	"strings"

	"paydesk/internal/domain/salary"
)

// Catalog holds every user-facing string of the interactive shell. Two sets
// are shipped, English and Russian.
type Catalog struct {
	Welcome     string
	CeilingNote string

	MenuHeader  string
	MenuAdd     string
	MenuAverage string
	MenuList    string
	MenuExit    string
	MenuExport  string
	MenuFooter  string

	PromptChoice      string
	PromptName        string
	PromptBase        string
	PaymentTypeHeader string
	PaymentTypeBasic  string
	PaymentTypeBonus  string
	PromptPaymentType string
	PromptBonus       string

	AddedWorkFmt      string
	AddedBonusWorkFmt string
	AverageFmt        string
	ListHeader        string
	ListEmpty         string
	WorkLineFmt       string
	StrategyBasic     string
	StrategyBonusFmt  string
	ReportSavedFmt    string

	InvalidChoice      string
	InvalidPaymentType string
	NeedNonEmpty       string
	NeedNumber         string
	NeedInteger        string
	WarnFmt            string
	NoWorks            string

	Farewell string
}

func English() Catalog {
	return Catalog{
		Welcome:     "Welcome to the salary calculation system!",
		CeilingNote: fmt.Sprintf("Maximum salary: %.2f\n", salary.MaxSalary),

		MenuHeader:  "=== MENU ===",
		MenuAdd:     "1. Add a new work type",
		MenuAverage: "2. Calculate the average salary",
		MenuList:    "3. List all work types",
		MenuExit:    "4. Exit",
		MenuExport:  "5. Export salary report (PDF)",
		MenuFooter:  "==================",

		PromptChoice:      "Choose an action: ",
		PromptName:        "Enter the work name: ",
		PromptBase:        "Enter the base pay amount: ",
		PaymentTypeHeader: "\nChoose the payment type:",
		PaymentTypeBasic:  "1. Base pay (no bonus)",
		PaymentTypeBonus:  "2. Pay with a percentage bonus",
		PromptPaymentType: "Your choice (1 or 2): ",
		PromptBonus:       "Enter the bonus percentage (0-200%): ",

		AddedWorkFmt:      "✅ Added work type: %s\n",
		AddedBonusWorkFmt: "✅ Added work type with bonus: %s\n",
		AverageFmt:        "\n✅ Average salary across all work types: %.2f\n\n",
		ListHeader:        "\n=== All registered work types ===",
		ListEmpty:         "The work list is empty.",
		WorkLineFmt:       "%d. %s: %.2f (base: %.2f, %s)",
		StrategyBasic:     "base pay",
		StrategyBonusFmt:  "%g%% bonus",
		ReportSavedFmt:    "✅ Salary report saved to %s\n",

		InvalidChoice:      "❌ Invalid choice. Try again.\n",
		InvalidPaymentType: "❌ Invalid payment type. Operation cancelled.\n",
		NeedNonEmpty:       "❌ Enter a non-empty value.",
		NeedNumber:         "❌ Enter a valid number (for example: 120000.0).",
		NeedInteger:        "❌ Enter a whole number (1 or 2).",
		WarnFmt:            "⚠️ Error: %v\n",
		NoWorks:            "⚠️ No work types have been registered yet.\n",

		Farewell: "\nGoodbye! The system has finished.",
	}
}

func Russian() Catalog {
	return Catalog{
		Welcome:     "Добро пожаловать в систему расчёта зарплат!",
		CeilingNote: fmt.Sprintf("Максимальная зарплата: %.2f руб.\n", salary.MaxSalary),

		MenuHeader:  "=== МЕНЮ ===",
		MenuAdd:     "1. Добавить новый тип работы",
		MenuAverage: "2. Рассчитать среднюю зарплату",
		MenuList:    "3. Показать все типы работ",
		MenuExit:    "4. Выход",
		MenuExport:  "5. Экспорт отчёта по зарплатам (PDF)",
		MenuFooter:  "==================",

		PromptChoice:      "Выберите действие: ",
		PromptName:        "Введите название работы: ",
		PromptBase:        "Введите базовую сумму оплаты (руб.): ",
		PaymentTypeHeader: "\nВыберите тип оплаты:",
		PaymentTypeBasic:  "1. Базовая оплата (без надбавки)",
		PaymentTypeBonus:  "2. Оплата с надбавкой (в процентах)",
		PromptPaymentType: "Ваш выбор (1 или 2): ",
		PromptBonus:       "Введите процент надбавки (0–200%): ",

		AddedWorkFmt:      "✅ Добавлен тип работы: %s\n",
		AddedBonusWorkFmt: "✅ Добавлен тип работы с надбавкой: %s\n",
		AverageFmt:        "\n✅ Средняя зарплата по всем видам работ: %.2f руб.\n\n",
		ListHeader:        "\n=== Список всех типов работ ===",
		ListEmpty:         "Список работ пуст.",
		WorkLineFmt:       "%d. %s: %.2f руб. (база: %.2f руб., %s)",
		StrategyBasic:     "базовая оплата",
		StrategyBonusFmt:  "надбавка %g%%",
		ReportSavedFmt:    "✅ Отчёт по зарплатам сохранён в %s\n",

		InvalidChoice:      "❌ Неверный выбор. Попробуйте снова.\n",
		InvalidPaymentType: "❌ Неверный выбор типа оплаты. Отмена операции.\n",
		NeedNonEmpty:       "❌ Введите непустое значение.",
		NeedNumber:         "❌ Введите корректное число (например: 120000.0).",
		NeedInteger:        "❌ Введите целое число (1 или 2).",
		WarnFmt:            "⚠️ Ошибка: %v\n",
		NoWorks:            "⚠️ Не добавлено ни одного типа работ.\n",

		Farewell: "\nДо свидания! Работа системы завершена.",
	}
}

// ForLang selects a catalog by language code. Unknown codes fall back to
// English.
func ForLang(lang string) Catalog {
	switch strings.ToLower(strings.TrimSpace(lang)) {
	case "ru":
		return Russian()
	default:
		return English()
	}
}

// DescribeStrategy renders a strategy for display in the given catalog's
// language.
func DescribeStrategy(cat Catalog, s salary.Strategy) string {
	switch st := s.(type) {
	case salary.BonusStrategy:
		return fmt.Sprintf(cat.StrategyBonusFmt, st.Percent())
	default:
		return cat.StrategyBasic
	}
}
