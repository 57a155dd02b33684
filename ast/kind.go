package ast

// Kind tags the dynamic type of a Node for fast switches without a
// type assertion, mirroring the teacher's ASTKind enum.
type Kind int

const (
	KindTranslationUnit Kind = iota

	// external declarations
	KindFunctionDefinition
	KindDeclaration

	// declarators
	KindDeclarator
	KindAbstractDeclarator
	KindPointer
	KindArrayDeclarator
	KindFunctionDeclarator
	KindParameter
	KindTypeName
	KindInitializerList
	KindInitDeclarator

	// type specifiers
	KindBasicType
	KindTypedefNameType
	KindStructOrUnionSpecifier
	KindEnumSpecifier
	KindEnumerator
	KindAtomicType
	KindAttributeSpecifier

	// identifiers (the eight semantically distinct hooks)
	KindVariableName
	KindTypeNameIdentifier
	KindEnumConstantName
	KindLabelName
	KindMemberName
	KindStructName
	KindEnumName
	KindEnumeratorName

	// expressions
	KindIntLiteral
	KindFloatLiteral
	KindCharLiteral
	KindStringLiteral
	KindParenExpr
	KindUnaryExpr
	KindBinaryExpr
	KindAssignExpr
	KindConditionalExpr
	KindCommaExpr
	KindCastExpr
	KindSizeofExpr
	KindSizeofType
	KindAlignofType
	KindCallExpr
	KindSubscriptExpr
	KindMemberExpr
	KindArrowExpr
	KindPostIncDec
	KindPreIncDec
	KindCompoundLiteral
	KindGenericSelection

	// statements
	KindCompoundStatement
	KindExpressionStatement
	KindIfStatement
	KindSwitchStatement
	KindCaseStatement
	KindDefaultStatement
	KindWhileStatement
	KindDoWhileStatement
	KindForStatement
	KindGotoStatement
	KindContinueStatement
	KindBreakStatement
	KindReturnStatement
	KindLabeledStatement
	KindNullStatement

	// recovery
	KindError
)

func (k Kind) String() string {
	names := map[Kind]string{
		KindTranslationUnit:        "translation-unit",
		KindFunctionDefinition:     "function-definition",
		KindDeclaration:            "declaration",
		KindDeclarator:             "declarator",
		KindAbstractDeclarator:     "abstract-declarator",
		KindPointer:                "pointer",
		KindArrayDeclarator:        "array-declarator",
		KindFunctionDeclarator:     "function-declarator",
		KindParameter:              "parameter",
		KindTypeName:               "type-name",
		KindInitializerList:        "initializer-list",
		KindInitDeclarator:         "init-declarator",
		KindBasicType:              "basic-type",
		KindTypedefNameType:        "typedef-name",
		KindStructOrUnionSpecifier: "struct-or-union-specifier",
		KindEnumSpecifier:          "enum-specifier",
		KindEnumerator:             "enumerator",
		KindAtomicType:             "atomic-type",
		KindAttributeSpecifier:     "attribute-specifier",
		KindVariableName:           "variable-name",
		KindTypeNameIdentifier:     "type-name-identifier",
		KindEnumConstantName:       "enum-constant-name",
		KindLabelName:              "label-name",
		KindMemberName:             "member-name",
		KindStructName:             "struct-name",
		KindEnumName:               "enum-name",
		KindEnumeratorName:         "enumerator-name",
		KindIntLiteral:             "int-literal",
		KindFloatLiteral:           "float-literal",
		KindCharLiteral:            "char-literal",
		KindStringLiteral:          "string-literal",
		KindParenExpr:              "paren-expr",
		KindUnaryExpr:              "unary-expr",
		KindBinaryExpr:             "binary-expr",
		KindAssignExpr:             "assign-expr",
		KindConditionalExpr:        "conditional-expr",
		KindCommaExpr:              "comma-expr",
		KindCastExpr:               "cast-expr",
		KindSizeofExpr:             "sizeof-expr",
		KindSizeofType:             "sizeof-type",
		KindAlignofType:            "alignof-type",
		KindCallExpr:               "call-expr",
		KindSubscriptExpr:          "subscript-expr",
		KindMemberExpr:             "member-expr",
		KindArrowExpr:              "arrow-expr",
		KindPostIncDec:             "post-inc-dec",
		KindPreIncDec:              "pre-inc-dec",
		KindCompoundLiteral:        "compound-literal",
		KindGenericSelection:       "generic-selection",
		KindCompoundStatement:      "compound-statement",
		KindExpressionStatement:    "expression-statement",
		KindIfStatement:            "if-statement",
		KindSwitchStatement:        "switch-statement",
		KindCaseStatement:          "case-statement",
		KindDefaultStatement:       "default-statement",
		KindWhileStatement:         "while-statement",
		KindDoWhileStatement:       "do-while-statement",
		KindForStatement:           "for-statement",
		KindGotoStatement:          "goto-statement",
		KindContinueStatement:      "continue-statement",
		KindBreakStatement:         "break-statement",
		KindReturnStatement:        "return-statement",
		KindLabeledStatement:       "labeled-statement",
		KindNullStatement:          "null-statement",
		KindError:                  "error",
	}
	if s, ok := names[k]; ok {
		return s
	}
	return "unknown"
}
