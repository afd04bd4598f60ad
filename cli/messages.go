// SPDX-License-Identifier: MIT

package cli

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

// Message keys of the catalog.
const (
	msgArgumentCount = "error.argument-count"
	msgArgumentParse = "error.argument-parse"
	msgHelp          = "help.usage"
	msgShort         = "help.short"
)

// DefaultLanguage is used when the environment names no supported language.
var DefaultLanguage = language.Russian

// supported lists the catalog languages; the first one is the default.
var supported = []language.Tag{language.Russian, language.English}

var matcher = language.NewMatcher(supported)

var messages = newCatalog()

const helpRU = `Решение кубического уравнения a·x³ + b·x² + c·x + d = 0

Использование:
  solvecubic a b c d
  solvecubic help

Аргументы a, b, c, d — вещественные коэффициенты, от старшей степени к младшей.
Если старшие коэффициенты равны нулю, решается квадратное, линейное
или вырожденное уравнение.

Вывод:
  действительные корни по возрастанию через пробел;
  корень, отличающийся от целого не более чем на 1e-6, печатается как целое,
  остальные — с тремя знаками после запятой;
  x ∈ ℝ — уравнению удовлетворяет любое действительное число;
  x ∈ ∅ — действительных корней нет.

Окружение:
  SOLVECUBIC_LANG  язык сообщений (ru, en); если не задан, язык берётся
                   из LC_ALL, LC_MESSAGES или LANG, иначе русский;
                   LANG=en_US.UTF-8 переключает сообщения на английский
  SOLVECUBIC_LOG   диагностика в stderr: debug, info, warn или error

Пример:
  $ solvecubic 1 -6 11 -6
  1 2 3`

const helpEN = `Solves the cubic equation a·x³ + b·x² + c·x + d = 0

Usage:
  solvecubic a b c d
  solvecubic help

Arguments a, b, c, d are real coefficients, highest degree first.
When leading coefficients are zero the equation is solved as quadratic,
linear or degenerate.

Output:
  real roots in ascending order, separated by spaces;
  a root within 1e-6 of an integer is printed as that integer,
  others with three decimals;
  x ∈ ℝ: every real number is a solution;
  x ∈ ∅: there are no real roots.

Environment:
  SOLVECUBIC_LANG  message language (ru, en); when unset the language
                   comes from LC_ALL, LC_MESSAGES or LANG, else Russian;
                   LANG=ru_RU.UTF-8 or SOLVECUBIC_LANG=ru restores Russian
  SOLVECUBIC_LOG   diagnostics on stderr: debug, info, warn or error

Example:
  $ solvecubic 1 -6 11 -6
  1 2 3`

// newCatalog builds the message catalog. A failing SetString is a bug in
// the literals above, so it panics at init.
func newCatalog() *catalog.Builder {
	b := catalog.NewBuilder(catalog.Fallback(DefaultLanguage))
	set := func(tag language.Tag, key, msg string) {
		if err := b.SetString(tag, key, msg); err != nil {
			panic("cli: catalog: " + err.Error())
		}
	}

	set(language.Russian, msgArgumentCount, "Ошибка: требуется 4 коэффициента или команда help (получено аргументов: %d).")
	set(language.Russian, msgArgumentParse, "Ошибка: все аргументы должны быть вещественными числами (аргумент %d: %q).")
	set(language.Russian, msgHelp, helpRU)
	set(language.Russian, msgShort, "Действительные корни уравнения степени не выше третьей")

	set(language.English, msgArgumentCount, "Error: 4 coefficients or the help command are required (got %d arguments).")
	set(language.English, msgArgumentParse, "Error: all arguments must be real numbers (argument %d: %q).")
	set(language.English, msgHelp, helpEN)
	set(language.English, msgShort, "Real roots of an equation of degree at most three")

	return b
}

// newPrinter returns a printer bound to the catalog for tag.
func newPrinter(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag, message.Catalog(messages))
}

// matchLanguage maps any tag onto a supported one. It reports false when
// nothing matches better than the default.
func matchLanguage(tag language.Tag) (language.Tag, bool) {
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return DefaultLanguage, false
	}

	return supported[idx], true
}
