// Package bmfont tokenizes AngelCode BMFont text descriptors.
//
// A descriptor is a sequence of newline-terminated records. Each record
// starts with a tag word followed by space-separated key=value fields:
//
//	info face="Arial" size=32 unicode=1
//	common lineHeight=40 base=32 scaleW=256 scaleH=256 pages=1 packed=0
//	page id=0 file="arial_0.png"
//	char id=65 x=0 y=0 width=20 height=22 xoffset=0 yoffset=10 xadvance=21
//
// The Scanner yields one record at a time. Field values are only valid
// until the next call to Scan.
package bmfont
