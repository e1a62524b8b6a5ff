package tw

// State represents an interaction state variant
type State int

const (
	StateDefault State = iota
	StateHover
	StateFocus
	StateActive
	StateDisabled
	StatePlaceholder
)

// Breakpoint represents responsive breakpoint
type Breakpoint int

const (
	BreakpointBase Breakpoint = iota
	BreakpointSM               // ≥640px
	BreakpointMD               // ≥768px
	BreakpointLG               // ≥1024px
	BreakpointXL               // ≥1280px
	Breakpoint2XL              // ≥1536px
)

// Class is a single class token split into its variant modifiers and
// base utility.
type Class struct {
	Raw        string
	Variants   []string
	Breakpoint Breakpoint
	State      State
	DarkMode   bool
	Important  bool // leading "!"
	Negative   bool // leading "-", as in "-mt-4"
	Base       string
	Arbitrary  *ArbitraryValue // For arbitrary values like w-[33%]
}

// ArbitraryValue represents a bracketed arbitrary value
type ArbitraryValue struct {
	Property string // e.g., "w", "bg", "text", "rotate"; empty for [mask-type:alpha]
	Value    string // e.g., "33%", "#1da1f2", "22px", "17deg"
}

// utilities are standalone utility names.
var utilities = map[string]struct{}{
	"block": {}, "inline": {}, "inline-block": {}, "flex": {}, "inline-flex": {},
	"grid": {}, "inline-grid": {}, "contents": {}, "hidden": {}, "table": {},
	"static": {}, "fixed": {}, "absolute": {}, "relative": {}, "sticky": {},
	"visible": {}, "invisible": {}, "collapse": {},
	"container": {}, "truncate": {}, "sr-only": {}, "not-sr-only": {},
	"italic": {}, "not-italic": {}, "underline": {}, "overline": {}, "line-through": {}, "no-underline": {},
	"uppercase": {}, "lowercase": {}, "capitalize": {}, "normal-case": {},
	"antialiased": {}, "subpixel-antialiased": {},
	"rounded": {}, "border": {}, "shadow": {}, "ring": {}, "outline": {},
	"grow": {}, "shrink": {}, "transition": {}, "transform": {}, "filter": {},
	"isolate": {}, "resize": {}, "grayscale": {}, "invert": {}, "sepia": {}, "blur": {},
}

// prefixes are utility families taking a value after the dash.
var prefixes = []string{
	"bg-", "text-", "font-", "leading-", "tracking-", "decoration-", "indent-", "align-",
	"whitespace-", "break-", "list-",
	"p-", "px-", "py-", "pt-", "pr-", "pb-", "pl-", "ps-", "pe-",
	"m-", "mx-", "my-", "mt-", "mr-", "mb-", "ml-", "ms-", "me-",
	"space-x-", "space-y-", "gap-", "gap-x-", "gap-y-",
	"w-", "h-", "min-w-", "min-h-", "max-w-", "max-h-", "size-", "aspect-",
	"flex-", "basis-", "grow-", "shrink-", "order-",
	"grid-", "col-", "row-", "auto-cols-", "auto-rows-",
	"justify-", "items-", "self-", "content-", "place-",
	"top-", "right-", "bottom-", "left-", "inset-", "start-", "end-", "z-",
	"overflow-", "overscroll-", "object-", "float-", "clear-", "box-",
	"rounded-", "border-", "divide-", "outline-", "ring-", "shadow-", "opacity-",
	"from-", "via-", "to-", "fill-", "stroke-",
	"scale-", "rotate-", "translate-x-", "translate-y-", "skew-", "origin-",
	"transition-", "duration-", "ease-", "delay-", "animate-",
	"cursor-", "pointer-events-", "select-", "scroll-", "snap-", "touch-", "will-change-",
	"blur-", "brightness-", "contrast-", "grayscale-", "invert-", "saturate-", "sepia-", "backdrop-",
	"columns-", "table-", "caret-", "accent-", "appearance-",
}
