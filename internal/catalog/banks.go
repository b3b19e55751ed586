package catalog

import "github.com/yourusername/dram-rate-bot/internal/domain/entity"

const (
	Acba         entity.BankID = "acba"
	Ameria       entity.BankID = "ameria"
	Ararat       entity.BankID = "ararat"
	Ardshin      entity.BankID = "ardshin"
	ArmBusiness  entity.BankID = "arm_business"
	ArmSwiss     entity.BankID = "arm_swiss"
	Armeconom    entity.BankID = "armeconom"
	Artsakh      entity.BankID = "artsakh"
	Byblos       entity.BankID = "byblos"
	ConverseBank entity.BankID = "converse_bank"
	Evoca        entity.BankID = "evoca"
	HSBC         entity.BankID = "hsbc"
	IDBank       entity.BankID = "id_"
	Ineco        entity.BankID = "ineco"
	Mellat       entity.BankID = "mellat"
	Uni          entity.BankID = "uni"
	VTB          entity.BankID = "vtb"
)

func bank(id entity.BankID, externalID, hy, en, ru string) entity.Bank {
	return entity.Bank{
		ID:         id,
		ExternalID: externalID,
		Names: map[entity.Language]string{
			entity.LanguageHy: hy,
			entity.LanguageEn: en,
			entity.LanguageRu: ru,
		},
	}
}

// DefaultBanks banks listed on rate.am, in catalog order
func DefaultBanks() []entity.Bank {
	return []entity.Bank{
		bank(Acba, "f3ffb6cf-dbb6-4d43-b49c-f6d71350d7fb", "ԱԿԲԱ-ԿՐԵԴԻՏ ԱԳՐԻԿՈԼ ԲԱՆԿ", "ACBA-Credit Agricole Bank", "АКБА Кредит Агриколь Банк"),
		bank(Ameria, "989ba942-a5cf-4fc2-b62e-3248c4edfbbc", "Ամերիաբանկ", "Ameriabank", "Америабанк"),
		bank(Ararat, "5ee70183-87fe-4799-802e-ef7f5e7323db", "ԱՐԱՐԱՏԲԱՆԿ", "ARARATBANK", "АРАРАТБАНК"),
		bank(Ardshin, "466fe84c-197f-4174-bc97-e1dc7960edc7", "Արդշինբանկ", "Ardshinbank", "Ардшинбанк"),
		bank(ArmBusiness, "db08ff22-add9-45ea-a450-1fe5b1993704", "ՀԱՅԲԻԶՆԵՍԲԱՆԿ", "ArmBusinessBank", "Армбизнесбанк"),
		bank(ArmSwiss, "95b795f4-073d-4670-993d-dfb781375a94", "Արմսվիսբանկ", "ArmSwissBank", "Армсвисбанк"),
		bank(Armeconom, "b5bb13d2-8a79-43a8-a538-ffd1e2e21009", "ՀԱՅԷԿՈՆՈՄԲԱՆԿ", "ARMECONOMBANK", "АРМЭКОНОМБАНК"),
		bank(Artsakh, "e1a68c2e-bc47-4f58-afd2-3b80a8465b14", "Արցախբանկ", "Artsakhbank", "Арцахбанк"),
		bank(Byblos, "ebd241ce-4a38-45a4-9bcd-c6e607079706", "Բիբլոս Բանկ Արմենիա", "Byblos Bank Armenia", "Библос Банк Армения"),
		bank(ConverseBank, "2119a3f1-b233-4254-a450-304a2a5bff19", "Կոնվերս Բանկ", "Converse Bank", "Конверс Банк"),
		bank(Evoca, "0fffdcc4-8e36-49f3-9863-93ad02ce6541", "Էվոկաբանկ", "Evocabank", "Эвокабанк"),
		bank(HSBC, "332c7078-97ad-4bf7-b8ee-44d85a9c88d1", "Էյչ-Էս-Բի-Սի Բանկ", "HSBC Bank Armenia", "Эйч-Эс-Би-Си Банк Армения"),
		bank(IDBank, "8e9bd4c8-6f4a-4663-ae86-b8fbaf295030", "ԱյԴի Բանկ", "IDBank", "АйДи Банк"),
		bank(Ineco, "65351947-217c-4593-9011-941b88ee7baf", "Ինեկոբանկ", "Inecobank", "Инекобанк"),
		bank(Mellat, "f288c3fc-f524-468c-bff7-fbd9bbc6b8d7", "Մելլաթ բանկ", "Mellat Bank", "Меллат Банк"),
		bank(Uni, "133240fd-5910-421d-b417-5a9cedd5f5f7", "Յունիբանկ", "Unibank", "Юнибанк/Армения"),
		bank(VTB, "69460818-02ec-456e-8d09-8eeff6494bce", "ՎՏԲ-Հայաստան Բանկ", "VTB Bank (Armenia)", "ВТБ Армения"),
	}
}
