package structure

// MarkerKind identifies one of the three hierarchy levels above Pasal.
type MarkerKind string

const (
	KindBuku   MarkerKind = "BUKU"
	KindBab    MarkerKind = "BAB"
	KindBagian MarkerKind = "BAGIAN"
)

// Marker represents one occurrence of a BUKU/BAB/Bagian heading line.
type Marker struct {
	// Kind is the hierarchy level this marker belongs to.
	Kind MarkerKind

	// Label is the roman or arabic numeral identifying the heading
	// (e.g. "I", "IV", "2").
	Label string

	// Title is the free text following the label on the heading line.
	// May be empty; continuation lines are not collected.
	Title string

	// Offset is the byte position where the heading line begins in the
	// source text.
	Offset int
}

// ArticleBlock is the span of text belonging to one Pasal: everything from
// its header line to the next header line (or end of document), tagged with
// the nearest preceding hierarchy markers.
type ArticleBlock struct {
	// Label is the article's numeral, e.g. "12", "12A", or "XIV".
	Label string

	// Body is the block's text with its own "Pasal <Label>" header line
	// removed. Raw except for surrounding whitespace trimming; normalization
	// is a separate pass.
	Body string

	// Start and End delimit the block's span in the source text, header
	// included. Spans are contiguous: each block's End equals the next
	// block's Start, and the last block's End is the text length.
	Start int
	End   int

	// Buku, Bab, and Bagian are the nearest markers of each family at or
	// before Start. Nil when no such marker precedes the block.
	Buku   *Marker
	Bab    *Marker
	Bagian *Marker
}
