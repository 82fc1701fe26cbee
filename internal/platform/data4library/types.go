package data4library

import (
	"strconv"
	"strings"
)

// Library is one entry of a holding-library search.
type Library struct {
	Code          string   `json:"lib_code"`
	Name          string   `json:"name"`
	Address       string   `json:"address"`
	Tel           string   `json:"tel,omitempty"`
	Homepage      string   `json:"homepage,omitempty"`
	OperatingTime string   `json:"operating_time,omitempty"`
	Closed        string   `json:"closed,omitempty"`
	Latitude      *float64 `json:"latitude,omitempty"`
	Longitude     *float64 `json:"longitude,omitempty"`
}

// LibraryQuery parameters for libSrchByBook. Region is the 2-digit code,
// DtlRegion the optional 5-digit code.
type LibraryQuery struct {
	ISBN      string
	Region    string
	DtlRegion string
	PageNo    int
	PageSize  int
}

type LibraryPage struct {
	NumFound  int
	Libraries []Library
}

// Existence is the bookExist answer for one library.
type Existence struct {
	HasBook       bool
	LoanAvailable bool
}

// PopularQuery parameters for loanItemSrch. Dates are yyyy-mm-dd.
type PopularQuery struct {
	StartDate string
	EndDate   string
	Age       string
	Region    string
	PageSize  int
}

type PopularBook struct {
	Ranking         int    `json:"ranking"`
	Title           string `json:"title"`
	Authors         string `json:"authors"`
	Publisher       string `json:"publisher"`
	PublicationYear string `json:"publication_year"`
	ISBN13          string `json:"isbn13"`
	ClassName       string `json:"class_name,omitempty"`
	LoanCount       int    `json:"loan_count"`
	ImageURL        string `json:"image_url,omitempty"`
}

type BookDetail struct {
	Title           string `json:"title"`
	Authors         string `json:"authors"`
	Publisher       string `json:"publisher"`
	PublicationYear string `json:"publication_year"`
	ISBN            string `json:"isbn,omitempty"`
	ISBN13          string `json:"isbn13,omitempty"`
	ClassName       string `json:"class_name,omitempty"`
	Description     string `json:"description,omitempty"`
	ImageURL        string `json:"image_url,omitempty"`
}

// Wire formats. The API wraps every payload in {"response": {...}} and
// returns most numbers as strings.

type envelope[T any] struct {
	Response T `json:"response"`
}

type libSrchByBookResponse struct {
	Error    string `json:"error"`
	NumFound int    `json:"numFound"`
	Libs     []struct {
		Lib rawLibrary `json:"lib"`
	} `json:"libs"`
}

type rawLibrary struct {
	LibCode       string `json:"libCode"`
	LibName       string `json:"libName"`
	Address       string `json:"address"`
	Tel           string `json:"tel"`
	Homepage      string `json:"homepage"`
	Closed        string `json:"closed"`
	OperatingTime string `json:"operatingTime"`
	Latitude      string `json:"latitude"`
	Longitude     string `json:"longitude"`
}

func (r rawLibrary) toLibrary() Library {
	return Library{
		Code:          r.LibCode,
		Name:          r.LibName,
		Address:       r.Address,
		Tel:           r.Tel,
		Homepage:      r.Homepage,
		OperatingTime: r.OperatingTime,
		Closed:        r.Closed,
		Latitude:      parseCoord(r.Latitude),
		Longitude:     parseCoord(r.Longitude),
	}
}

type bookExistResponse struct {
	Error  string `json:"error"`
	Result struct {
		HasBook       string `json:"hasBook"`
		LoanAvailable string `json:"loanAvailable"`
	} `json:"result"`
}

type loanItemSrchResponse struct {
	Error string `json:"error"`
	Docs  []struct {
		Doc struct {
			Ranking         string `json:"ranking"`
			BookName        string `json:"bookname"`
			Authors         string `json:"authors"`
			Publisher       string `json:"publisher"`
			PublicationYear string `json:"publication_year"`
			ISBN13          string `json:"isbn13"`
			ClassName       string `json:"class_nm"`
			LoanCount       string `json:"loan_count"`
			BookImageURL    string `json:"bookImageURL"`
		} `json:"doc"`
	} `json:"docs"`
}

type srchDtlListResponse struct {
	Error  string `json:"error"`
	Detail []struct {
		Book struct {
			BookName        string `json:"bookname"`
			Authors         string `json:"authors"`
			Publisher       string `json:"publisher"`
			PublicationYear string `json:"publication_year"`
			ISBN            string `json:"isbn"`
			ISBN13          string `json:"isbn13"`
			ClassName       string `json:"class_nm"`
			Description     string `json:"description"`
			BookImageURL    string `json:"bookImageURL"`
		} `json:"book"`
	} `json:"detail"`
}

func parseCoord(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f == 0 {
		return nil
	}
	return &f
}

func atoi(s string) int {
	n, _ := strconv.Atoi(strings.TrimSpace(s))
	return n
}

func yes(s string) bool {
	return strings.EqualFold(strings.TrimSpace(s), "Y")
}
