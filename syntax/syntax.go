// Package syntax defines the target-language token table consumed by the
// emission engine. The engine itself never hard-codes a keyword; it reads
// every token through a Table, so the vocabulary stays a data concern.
package syntax

//go:generate go run ./internal

// Table holds the textual tokens of the target language.
type Table struct {
	// Declaration keywords.
	Class     string
	Struct    string
	Namespace string
	Using     string

	// Visibility keywords.
	Public            string
	Private           string
	Protected         string
	Internal          string
	ProtectedInternal string

	// Modifier keywords.
	Const    string
	Static   string
	Readonly string
	Virtual  string
	Override string
	Abstract string
	Sealed   string
	Partial  string

	// Statement and expression keywords.
	Var     string
	Void    string
	Return  string
	If      string
	Else    string
	For     string
	ForEach string
	In      string
	Where   string
	Base    string
	This    string
	Get     string
	Set     string

	// Lexical details.
	DocPrefix  string // prefix of each documentation comment line
	InheritDoc string // single-line inherited-documentation marker
	IndentUnit string // one level of indentation
	Terminator string // statement terminator
}

// CSharp returns the token table for the C# language.
func CSharp() *Table {
	return &Table{
		Class:             KwClass,
		Struct:            KwStruct,
		Namespace:         KwNamespace,
		Using:             KwUsing,
		Public:            KwPublic,
		Private:           KwPrivate,
		Protected:         KwProtected,
		Internal:          KwInternal,
		ProtectedInternal: KwProtected + " " + KwInternal,
		Const:             KwConst,
		Static:            KwStatic,
		Readonly:          KwReadonly,
		Virtual:           KwVirtual,
		Override:          KwOverride,
		Abstract:          KwAbstract,
		Sealed:            KwSealed,
		Partial:           KwPartial,
		Var:               KwVar,
		Void:              KwVoid,
		Return:            KwReturn,
		If:                KwIf,
		Else:              KwElse,
		For:               KwFor,
		ForEach:           KwForeach,
		In:                KwIn,
		Where:             KwWhere,
		Base:              KwBase,
		This:              KwThis,
		Get:               KwGet,
		Set:               KwSet,
		DocPrefix:         "/// ",
		InheritDoc:        "<inheritdoc />",
		IndentUnit:        "\t",
		Terminator:        ";",
	}
}
