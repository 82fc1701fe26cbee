package region

// defaultTree is the administrative area table: provinces and metropolitan
// cities (2-digit codes), then cities/gu (5-digit), then gu inside large
// cities (5-digit). Every child code starts with its province's 2 digits.
var defaultTree = []Node{
	{Code: "11", Name: "서울특별시", Aliases: []string{"서울시"}, Children: []Node{
		{Code: "11110", Name: "종로구"}, {Code: "11140", Name: "중구"}, {Code: "11170", Name: "용산구"},
		{Code: "11200", Name: "성동구"}, {Code: "11215", Name: "광진구"}, {Code: "11230", Name: "동대문구"},
		{Code: "11260", Name: "중랑구"}, {Code: "11290", Name: "성북구"}, {Code: "11305", Name: "강북구"},
		{Code: "11320", Name: "도봉구"}, {Code: "11350", Name: "노원구"}, {Code: "11380", Name: "은평구"},
		{Code: "11410", Name: "서대문구"}, {Code: "11440", Name: "마포구"}, {Code: "11470", Name: "양천구"},
		{Code: "11500", Name: "강서구"}, {Code: "11530", Name: "구로구"}, {Code: "11545", Name: "금천구"},
		{Code: "11560", Name: "영등포구"}, {Code: "11590", Name: "동작구"}, {Code: "11620", Name: "관악구"},
		{Code: "11650", Name: "서초구"}, {Code: "11680", Name: "강남구"}, {Code: "11710", Name: "송파구"},
		{Code: "11740", Name: "강동구"},
	}},
	{Code: "26", Name: "부산광역시", Aliases: []string{"부산시"}, Children: []Node{
		{Code: "26110", Name: "중구"}, {Code: "26140", Name: "서구"}, {Code: "26170", Name: "동구"},
		{Code: "26200", Name: "영도구"}, {Code: "26230", Name: "부산진구"}, {Code: "26260", Name: "동래구"},
		{Code: "26290", Name: "남구"}, {Code: "26320", Name: "북구"}, {Code: "26350", Name: "해운대구"},
		{Code: "26380", Name: "사하구"}, {Code: "26410", Name: "금정구"}, {Code: "26440", Name: "강서구"},
		{Code: "26470", Name: "연제구"}, {Code: "26500", Name: "수영구"}, {Code: "26530", Name: "사상구"},
		{Code: "26710", Name: "기장군"},
	}},
	{Code: "27", Name: "대구광역시", Aliases: []string{"대구시"}, Children: []Node{
		{Code: "27110", Name: "중구"}, {Code: "27140", Name: "동구"}, {Code: "27170", Name: "서구"},
		{Code: "27200", Name: "남구"}, {Code: "27230", Name: "북구"}, {Code: "27260", Name: "수성구"},
		{Code: "27290", Name: "달서구"}, {Code: "27710", Name: "달성군"},
	}},
	{Code: "28", Name: "인천광역시", Aliases: []string{"인천시"}, Children: []Node{
		{Code: "28110", Name: "중구"}, {Code: "28140", Name: "동구"}, {Code: "28177", Name: "미추홀구"},
		{Code: "28185", Name: "연수구"}, {Code: "28200", Name: "남동구"}, {Code: "28237", Name: "부평구"},
		{Code: "28245", Name: "계양구"}, {Code: "28260", Name: "서구"}, {Code: "28710", Name: "강화군"},
		{Code: "28720", Name: "옹진군"},
	}},
	{Code: "29", Name: "광주광역시", Children: []Node{
		{Code: "29110", Name: "동구"}, {Code: "29140", Name: "서구"}, {Code: "29155", Name: "남구"},
		{Code: "29170", Name: "북구"}, {Code: "29200", Name: "광산구"},
	}},
	{Code: "30", Name: "대전광역시", Aliases: []string{"대전시"}, Children: []Node{
		{Code: "30110", Name: "동구"}, {Code: "30140", Name: "중구"}, {Code: "30170", Name: "서구"},
		{Code: "30200", Name: "유성구"}, {Code: "30230", Name: "대덕구"},
	}},
	{Code: "31", Name: "울산광역시", Aliases: []string{"울산시"}, Children: []Node{
		{Code: "31110", Name: "중구"}, {Code: "31140", Name: "남구"}, {Code: "31170", Name: "동구"},
		{Code: "31200", Name: "북구"}, {Code: "31710", Name: "울주군"},
	}},
	{Code: "36", Name: "세종특별자치시", Children: []Node{
		{Code: "36110", Name: "세종시"},
	}},
	{Code: "41", Name: "경기도", Children: []Node{
		{Code: "41110", Name: "수원시", Children: []Node{
			{Code: "41111", Name: "장안구"}, {Code: "41113", Name: "권선구"},
			{Code: "41115", Name: "팔달구"}, {Code: "41117", Name: "영통구"},
		}},
		{Code: "41130", Name: "성남시", Children: []Node{
			{Code: "41131", Name: "수정구"}, {Code: "41133", Name: "중원구"}, {Code: "41135", Name: "분당구"},
		}},
		{Code: "41150", Name: "의정부시"},
		{Code: "41170", Name: "안양시", Children: []Node{
			{Code: "41171", Name: "만안구"}, {Code: "41173", Name: "동안구"},
		}},
		{Code: "41190", Name: "부천시"}, {Code: "41210", Name: "광명시"}, {Code: "41220", Name: "평택시"},
		{Code: "41250", Name: "동두천시"},
		{Code: "41270", Name: "안산시", Children: []Node{
			{Code: "41271", Name: "상록구"}, {Code: "41273", Name: "단원구"},
		}},
		{Code: "41280", Name: "고양시", Children: []Node{
			{Code: "41281", Name: "덕양구"}, {Code: "41285", Name: "일산동구"}, {Code: "41287", Name: "일산서구"},
		}},
		{Code: "41290", Name: "과천시"}, {Code: "41310", Name: "구리시"}, {Code: "41360", Name: "남양주시"},
		{Code: "41370", Name: "오산시"}, {Code: "41390", Name: "시흥시"}, {Code: "41410", Name: "군포시"},
		{Code: "41430", Name: "의왕시"}, {Code: "41450", Name: "하남시"},
		{Code: "41460", Name: "용인시", Children: []Node{
			{Code: "41461", Name: "처인구"}, {Code: "41463", Name: "기흥구"}, {Code: "41465", Name: "수지구"},
		}},
		{Code: "41480", Name: "파주시"}, {Code: "41500", Name: "이천시"}, {Code: "41550", Name: "안성시"},
		{Code: "41570", Name: "김포시"}, {Code: "41590", Name: "화성시"}, {Code: "41610", Name: "광주시"},
		{Code: "41630", Name: "양주시"}, {Code: "41650", Name: "포천시"}, {Code: "41670", Name: "여주시"},
		{Code: "41800", Name: "연천군"}, {Code: "41820", Name: "가평군"}, {Code: "41830", Name: "양평군"},
	}},
	{Code: "51", Name: "강원특별자치도", Aliases: []string{"강원도"}, Children: []Node{
		{Code: "51110", Name: "춘천시"}, {Code: "51130", Name: "원주시"}, {Code: "51150", Name: "강릉시"},
		{Code: "51170", Name: "동해시"}, {Code: "51190", Name: "태백시"}, {Code: "51210", Name: "속초시"},
		{Code: "51230", Name: "삼척시"},
	}},
	{Code: "43", Name: "충청북도", Aliases: []string{"충북"}, Children: []Node{
		{Code: "43110", Name: "청주시", Children: []Node{
			{Code: "43111", Name: "상당구"}, {Code: "43112", Name: "서원구"},
			{Code: "43113", Name: "흥덕구"}, {Code: "43114", Name: "청원구"},
		}},
		{Code: "43130", Name: "충주시"}, {Code: "43150", Name: "제천시"},
	}},
	{Code: "44", Name: "충청남도", Aliases: []string{"충남"}, Children: []Node{
		{Code: "44130", Name: "천안시", Children: []Node{
			{Code: "44131", Name: "동남구"}, {Code: "44133", Name: "서북구"},
		}},
		{Code: "44150", Name: "공주시"}, {Code: "44180", Name: "보령시"}, {Code: "44200", Name: "아산시"},
		{Code: "44210", Name: "서산시"}, {Code: "44230", Name: "논산시"},
	}},
	{Code: "52", Name: "전북특별자치도", Aliases: []string{"전라북도", "전북"}, Children: []Node{
		{Code: "52110", Name: "전주시", Children: []Node{
			{Code: "52111", Name: "완산구"}, {Code: "52113", Name: "덕진구"},
		}},
		{Code: "52130", Name: "군산시"}, {Code: "52140", Name: "익산시"}, {Code: "52190", Name: "남원시"},
	}},
	{Code: "46", Name: "전라남도", Aliases: []string{"전남"}, Children: []Node{
		{Code: "46110", Name: "목포시"}, {Code: "46130", Name: "여수시"}, {Code: "46150", Name: "순천시"},
		{Code: "46170", Name: "나주시"}, {Code: "46230", Name: "광양시"},
	}},
	{Code: "47", Name: "경상북도", Aliases: []string{"경북"}, Children: []Node{
		{Code: "47110", Name: "포항시", Children: []Node{
			{Code: "47111", Name: "남구"}, {Code: "47113", Name: "북구"},
		}},
		{Code: "47130", Name: "경주시"}, {Code: "47150", Name: "김천시"}, {Code: "47170", Name: "안동시"},
		{Code: "47190", Name: "구미시"},
	}},
	{Code: "48", Name: "경상남도", Aliases: []string{"경남"}, Children: []Node{
		{Code: "48120", Name: "창원시", Children: []Node{
			{Code: "48121", Name: "의창구"}, {Code: "48123", Name: "성산구"}, {Code: "48125", Name: "마산합포구"},
			{Code: "48127", Name: "마산회원구"}, {Code: "48129", Name: "진해구"},
		}},
		{Code: "48170", Name: "진주시"}, {Code: "48220", Name: "통영시"}, {Code: "48250", Name: "김해시"},
		{Code: "48310", Name: "거제시"}, {Code: "48330", Name: "양산시"},
	}},
	{Code: "50", Name: "제주특별자치도", Aliases: []string{"제주도"}, Children: []Node{
		{Code: "50110", Name: "제주시"}, {Code: "50130", Name: "서귀포시"},
	}},
}
