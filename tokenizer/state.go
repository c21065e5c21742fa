package tokenizer

// State is one of the tokenizer's states. The set is closed and fixed, so a
// switch over State is exhaustive by inspection rather than by a runtime
// lookup table — the source this was distilled from dispatches through a
// std::unordered_map<State, std::function<void()>>, which buys nothing once
// the state set can't grow at runtime.
type State int

const (
	Data State = iota
	TagOpen
	TagName
	EndTagOpen
	MarkupDeclarationOpen
	Doctype
	BeforeDoctypeName
	DoctypeName
	AfterDoctypeName
	AfterDoctypePublicKeyword
	BeforeDoctypePublicIdentifier
	DoctypePublicIdentifierDoubleQuoted
	AfterDoctypePublicIdentifier
	BeforeAttributeName
	AttributeName
	AfterAttributeName
	BeforeAttributeValue
	AttributeValueDoubleQuoted
	AttributeValueSingleQuoted
	AttributeValueUnquoted
	AfterAttributeValueQuoted
	SelfClosingStartTag
	CommentStart
	CommentStartDash
	Comment
	CommentLessThanSign
	CommentLessThanSignBang
	CommentLessThanSignBangDash
	CommentLessThanSignBangDashDash
	CommentEndDash
	CommentEnd
	ScriptData
	StyleData
)

var stateNames = [...]string{
	"Data",
	"TagOpen",
	"TagName",
	"EndTagOpen",
	"MarkupDeclarationOpen",
	"Doctype",
	"BeforeDoctypeName",
	"DoctypeName",
	"AfterDoctypeName",
	"AfterDoctypePublicKeyword",
	"BeforeDoctypePublicIdentifier",
	"DoctypePublicIdentifierDoubleQuoted",
	"AfterDoctypePublicIdentifier",
	"BeforeAttributeName",
	"AttributeName",
	"AfterAttributeName",
	"BeforeAttributeValue",
	"AttributeValueDoubleQuoted",
	"AttributeValueSingleQuoted",
	"AttributeValueUnquoted",
	"AfterAttributeValueQuoted",
	"SelfClosingStartTag",
	"CommentStart",
	"CommentStartDash",
	"Comment",
	"CommentLessThanSign",
	"CommentLessThanSignBang",
	"CommentLessThanSignBangDash",
	"CommentLessThanSignBangDashDash",
	"CommentEndDash",
	"CommentEnd",
	"ScriptData",
	"StyleData",
}

func (s State) String() string {
	if int(s) < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}
